package throw

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/greed/internal/repositories/throw Repository

import (
	"context"

	"github.com/KirkDiggler/greed/internal/models"
)

// Repository defines the interface for scored throw persistence
type Repository interface {
	// SaveThrow persists a scored throw
	SaveThrow(ctx context.Context, input *SaveThrowInput) error

	// GetThrow retrieves a throw by ID
	GetThrow(ctx context.Context, input *GetThrowInput) (*models.Throw, error)

	// ListThrowsByPlayer retrieves a player's most recent throws, newest first
	ListThrowsByPlayer(ctx context.Context, input *ListThrowsByPlayerInput) (*ListThrowsOutput, error)

	// ListThrowsByChannel retrieves a channel's most recent throws, newest first
	ListThrowsByChannel(ctx context.Context, input *ListThrowsByChannelInput) (*ListThrowsOutput, error)
}
