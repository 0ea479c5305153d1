package calculator

import (
	"errors"

	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/models"
	"github.com/KirkDiggler/greed/internal/rules"
)

// Calculator scores a throw
type Calculator interface {
	// Calculate returns the coins the dice are worth
	Calculate(d dice.Dice) models.Coins

	// Evaluate scores the dice and reports which rules paid
	Evaluate(d dice.Dice) *Result
}

// Config holds configuration for the reward calculator
type Config struct {
	// Catalog is the set of rules to score with. Defaults to rules.DefaultCatalog.
	Catalog rules.Catalog
}

// Result is the outcome of scoring a throw
type Result struct {
	// Coins is the total reward
	Coins models.Coins

	// Applied lists the rules in the order they were applied
	Applied []*models.AppliedRule

	// Remaining are the dice no rule could use
	Remaining dice.Dice
}

// RewardCalculator scores throws greedily: it keeps applying the best paying
// satisfied rule until none is satisfied. Safe for concurrent use.
type RewardCalculator struct {
	catalog rules.Catalog
}

var defaultCalculator = &RewardCalculator{catalog: rules.DefaultCatalog()}

// New creates a reward calculator
func New(cfg *Config) (*RewardCalculator, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = rules.DefaultCatalog()
	}
	if len(catalog) == 0 {
		return nil, errors.New("catalog cannot be empty")
	}

	return &RewardCalculator{catalog: catalog}, nil
}

// Default returns the calculator for the standard reward table
func Default() *RewardCalculator {
	return defaultCalculator
}

// Score returns the coins the faces are worth with the standard reward table
func Score(faces []models.Face) models.Coins {
	return defaultCalculator.Calculate(dice.FromFaces(faces))
}

// Calculate returns the coins the dice are worth. The dice are not modified.
func (c *RewardCalculator) Calculate(d dice.Dice) models.Coins {
	return c.Evaluate(d).Coins
}

// Evaluate scores the dice and reports which rules paid. The dice are not modified.
func (c *RewardCalculator) Evaluate(d dice.Dice) *Result {
	result := &Result{
		Applied: []*models.AppliedRule{},
	}

	current := d
	for {
		rule := c.mostRewardedRule(current)
		if rule == nil {
			break
		}

		reward, remaining := rules.Apply(rule, current)
		result.Coins += reward
		result.Applied = append(result.Applied, &models.AppliedRule{
			Rule:     rule.Name(),
			Reward:   reward,
			Consumed: consumed(current, remaining),
		})
		current = remaining
	}

	result.Remaining = current.Clone()
	return result
}

// mostRewardedRule picks the satisfied rule paying the most. On a tie the
// rule later in the catalog wins.
func (c *RewardCalculator) mostRewardedRule(d dice.Dice) rules.Rule {
	var (
		best       rules.Rule
		bestReward models.Coins
	)
	for _, r := range c.catalog {
		if !r.IsSatisfied(d) {
			continue
		}
		reward := r.Reward(d)
		if best == nil || reward >= bestReward {
			best = r
			bestReward = reward
		}
	}
	return best
}

// consumed lists the faces present in before but not in after
func consumed(before, after dice.Dice) []models.Face {
	var faces []models.Face
	for _, f := range models.AllFaces {
		for i := after.Occurrence(f); i < before.Occurrence(f); i++ {
			faces = append(faces, f)
		}
	}
	return faces
}
