package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetThrowResultMessage returns a message reacting to a scored throw
	GetThrowResultMessage(ctx context.Context, input *GetThrowResultMessageInput) (*GetThrowResultMessageOutput, error)
}
