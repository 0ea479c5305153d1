package throw

import "github.com/KirkDiggler/greed/internal/models"

type SaveThrowInput struct {
	Throw *models.Throw
}

type GetThrowInput struct {
	ThrowID string
}

type ListThrowsByPlayerInput struct {
	PlayerID string

	// Limit caps the number of throws returned. Zero means DefaultListLimit.
	Limit int
}

type ListThrowsByChannelInput struct {
	ChannelID string

	// Limit caps the number of throws returned. Zero means DefaultListLimit.
	Limit int
}

type ListThrowsOutput struct {
	Throws []*models.Throw
}
