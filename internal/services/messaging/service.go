package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/greed/internal/models"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// Every template takes the player name once
var throwMessages = map[ThrowOutcome][]string{
	OutcomeBust: {
		"%s rolled a whole lot of nothing. The coin purse stays shut.",
		"Not a single scoring die for %s. Greed is a cruel mistress.",
		"%s, those dice are purely decorative today.",
		"The house thanks %s for their generous contribution of zero.",
	},
	OutcomeScraps: {
		"%s scrapes a few coins off the table floor.",
		"Loose change for %s. It all adds up. Eventually.",
		"%s will take what they can get.",
	},
	OutcomeStraight: {
		"Five different faces! %s pulls off the straight.",
		"No repeats, no mercy. Straight for %s!",
		"%s lined them all up. Pay the straight!",
	},
	OutcomeHaul: {
		"%s is swimming in coins!",
		"Somebody check %s's sleeves for extra dice.",
		"The dice gods smile on %s today. What a haul!",
		"%s just broke the bank!",
	},
	OutcomeSolid: {
		"A respectable throw from %s.",
		"%s pockets some honest coins.",
		"Nice set, %s. Keep that greed going.",
	},
}

// GetThrowResultMessage returns a message reacting to a scored throw
func (s *service) GetThrowResultMessage(ctx context.Context, input *GetThrowResultMessageInput) (*GetThrowResultMessageOutput, error) {
	if input == nil || input.Throw == nil {
		return nil, errors.New("input and throw cannot be nil")
	}

	outcome := classify(input.Throw)
	messages := throwMessages[outcome]

	s.mu.Lock()
	template := messages[s.rand.Intn(len(messages))]
	s.mu.Unlock()

	name := input.Throw.PlayerName
	if name == "" {
		name = "Someone"
	}

	return &GetThrowResultMessageOutput{
		Outcome: outcome,
		Message: fmt.Sprintf(template, name),
	}, nil
}

// classify picks the message group for a throw
func classify(throw *models.Throw) ThrowOutcome {
	if throw.Reward == 0 {
		return OutcomeBust
	}
	if throw.Reward >= BigHaul {
		return OutcomeHaul
	}

	loose := true
	for _, step := range throw.AppliedRules {
		if step.Rule == "straight" {
			return OutcomeStraight
		}
		if !strings.HasPrefix(step.Rule, "loose ") {
			loose = false
		}
	}
	if loose {
		return OutcomeScraps
	}
	return OutcomeSolid
}
