package scoring

import "context"

// Service defines the interface for scoring throws
type Service interface {
	// ScoreThrow scores faces a player reports and records the throw
	ScoreThrow(ctx context.Context, input *ScoreThrowInput) (*ScoreThrowOutput, error)

	// RollThrow rolls dice for a player, scores them and records the throw
	RollThrow(ctx context.Context, input *RollThrowInput) (*RollThrowOutput, error)

	// GetThrow retrieves a recorded throw
	GetThrow(ctx context.Context, input *GetThrowInput) (*GetThrowOutput, error)

	// GetPlayerThrows lists a player's recent throws
	GetPlayerThrows(ctx context.Context, input *GetPlayerThrowsInput) (*GetThrowsOutput, error)

	// GetChannelThrows lists a channel's recent throws
	GetChannelThrows(ctx context.Context, input *GetChannelThrowsInput) (*GetThrowsOutput, error)
}
