package scoring

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/greed/internal/calculator"
	"github.com/KirkDiggler/greed/internal/common/clock"
	"github.com/KirkDiggler/greed/internal/common/uuid"
	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/models"
	throwRepo "github.com/KirkDiggler/greed/internal/repositories/throw"
)

// service implements the Service interface
type service struct {
	diceCount     int
	maxDice       int
	throwRepo     throwRepo.Repository
	calculator    calculator.Calculator
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new scoring service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ThrowRepo == nil {
		return nil, ErrNilThrowRepo
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxDice := cfg.MaxDice
	if maxDice <= 0 {
		maxDice = DefaultMaxDice
	}

	diceCount := cfg.DiceCount
	if diceCount <= 0 {
		diceCount = DefaultDiceCount
	}
	if diceCount > maxDice {
		return nil, fmt.Errorf("%w: dice count %d exceeds max %d", ErrInvalidInput, diceCount, maxDice)
	}

	calc := cfg.Calculator
	if calc == nil {
		calc = calculator.Default()
	}

	return &service{
		diceCount:     diceCount,
		maxDice:       maxDice,
		throwRepo:     cfg.ThrowRepo,
		calculator:    calc,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// ScoreThrow scores faces a player reports and records the throw
func (s *service) ScoreThrow(ctx context.Context, input *ScoreThrowInput) (*ScoreThrowOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	throw, err := s.score(ctx, input.PlayerID, input.PlayerName, input.ChannelID, input.Faces, false)
	if err != nil {
		return nil, err
	}

	return &ScoreThrowOutput{
		Throw: throw,
	}, nil
}

// RollThrow rolls dice for a player, scores them and records the throw
func (s *service) RollThrow(ctx context.Context, input *RollThrowInput) (*RollThrowOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	count := input.DiceCount
	if count == 0 {
		count = s.diceCount
	}
	if count < 0 {
		return nil, ErrNoDice
	}
	if count > s.maxDice {
		return nil, ErrTooManyDice
	}

	faces := dice.RollFaces(s.diceRoller, count)

	throw, err := s.score(ctx, input.PlayerID, input.PlayerName, input.ChannelID, faces, true)
	if err != nil {
		return nil, err
	}

	return &RollThrowOutput{
		Throw: throw,
	}, nil
}

// score validates the faces, runs the calculator and saves the result
func (s *service) score(ctx context.Context, playerID, playerName, channelID string, faces []models.Face, rolled bool) (*models.Throw, error) {
	if len(faces) == 0 {
		return nil, ErrNoDice
	}
	if len(faces) > s.maxDice {
		return nil, ErrTooManyDice
	}
	for _, f := range faces {
		if !f.IsValid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidFace, int(f))
		}
	}

	d := dice.FromFaces(faces)
	result := s.calculator.Evaluate(d)

	throw := &models.Throw{
		ID:           s.uuidGenerator.NewUUID(),
		PlayerID:     playerID,
		PlayerName:   playerName,
		ChannelID:    channelID,
		Faces:        d.Faces(),
		Reward:       result.Coins,
		AppliedRules: result.Applied,
		Rolled:       rolled,
		Timestamp:    s.clock.Now(),
	}

	if err := s.throwRepo.SaveThrow(ctx, &throwRepo.SaveThrowInput{
		Throw: throw,
	}); err != nil {
		log.Printf("Error saving throw %s for player %s: %v", throw.ID, playerID, err)
		return nil, fmt.Errorf("failed to save throw: %w", err)
	}

	return throw, nil
}

// GetThrow retrieves a recorded throw
func (s *service) GetThrow(ctx context.Context, input *GetThrowInput) (*GetThrowOutput, error) {
	if input == nil || input.ThrowID == "" {
		return nil, ErrInvalidInput
	}

	throw, err := s.throwRepo.GetThrow(ctx, &throwRepo.GetThrowInput{
		ThrowID: input.ThrowID,
	})
	if err != nil {
		if errors.Is(err, throwRepo.ErrThrowNotFound) {
			return nil, ErrThrowNotFound
		}
		return nil, err
	}

	return &GetThrowOutput{
		Throw: throw,
	}, nil
}

// GetPlayerThrows lists a player's recent throws
func (s *service) GetPlayerThrows(ctx context.Context, input *GetPlayerThrowsInput) (*GetThrowsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	output, err := s.throwRepo.ListThrowsByPlayer(ctx, &throwRepo.ListThrowsByPlayerInput{
		PlayerID: input.PlayerID,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetThrowsOutput{
		Throws: output.Throws,
	}, nil
}

// GetChannelThrows lists a channel's recent throws
func (s *service) GetChannelThrows(ctx context.Context, input *GetChannelThrowsInput) (*GetThrowsOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	output, err := s.throwRepo.ListThrowsByChannel(ctx, &throwRepo.ListThrowsByChannelInput{
		ChannelID: input.ChannelID,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetThrowsOutput{
		Throws: output.Throws,
	}, nil
}
