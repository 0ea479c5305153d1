package scoring

import (
	"github.com/KirkDiggler/greed/internal/calculator"
	"github.com/KirkDiggler/greed/internal/common/clock"
	"github.com/KirkDiggler/greed/internal/common/uuid"
	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/models"
	throwRepo "github.com/KirkDiggler/greed/internal/repositories/throw"
)

const (
	// DefaultDiceCount is how many dice a roll throws when no count is given
	DefaultDiceCount = 5

	// DefaultMaxDice is the largest throw accepted when MaxDice is not set
	DefaultMaxDice = 6
)

// Config holds configuration for the scoring service
type Config struct {
	// Number of dice a roll throws by default
	DiceCount int

	// Maximum number of dice in one throw
	MaxDice int

	// Repository dependencies
	ThrowRepo throwRepo.Repository

	// Service dependencies
	Calculator    calculator.Calculator
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// ScoreThrowInput contains parameters for scoring a reported throw
type ScoreThrowInput struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// ChannelID is the Discord channel the throw was made in
	ChannelID string

	// Faces are the faces the dice show
	Faces []models.Face
}

// ScoreThrowOutput contains the scored throw
type ScoreThrowOutput struct {
	Throw *models.Throw
}

// RollThrowInput contains parameters for rolling a throw
type RollThrowInput struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// ChannelID is the Discord channel the throw was made in
	ChannelID string

	// DiceCount is how many dice to roll. Zero means the configured default.
	DiceCount int
}

// RollThrowOutput contains the rolled and scored throw
type RollThrowOutput struct {
	Throw *models.Throw
}

// GetThrowInput contains parameters for retrieving a throw
type GetThrowInput struct {
	ThrowID string
}

// GetThrowOutput contains the retrieved throw
type GetThrowOutput struct {
	Throw *models.Throw
}

// GetPlayerThrowsInput contains parameters for listing a player's throws
type GetPlayerThrowsInput struct {
	PlayerID string
	Limit    int
}

// GetChannelThrowsInput contains parameters for listing a channel's throws
type GetChannelThrowsInput struct {
	ChannelID string
	Limit     int
}

// GetThrowsOutput contains throws, newest first
type GetThrowsOutput struct {
	Throws []*models.Throw
}
