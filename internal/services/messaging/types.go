package messaging

import "github.com/KirkDiggler/greed/internal/models"

// ThrowOutcome groups throws that get the same kind of message
type ThrowOutcome string

const (
	// OutcomeBust is a throw worth nothing
	OutcomeBust ThrowOutcome = "bust"

	// OutcomeScraps is a throw paid only by loose dice
	OutcomeScraps ThrowOutcome = "scraps"

	// OutcomeStraight is a throw of five different faces
	OutcomeStraight ThrowOutcome = "straight"

	// OutcomeHaul is a throw worth at least BigHaul coins
	OutcomeHaul ThrowOutcome = "haul"

	// OutcomeSolid is every other scoring throw
	OutcomeSolid ThrowOutcome = "solid"
)

// BigHaul is the reward from which a throw counts as a haul
const BigHaul models.Coins = 1000

// Config configures the messaging service
type Config struct {
	// Optional seed for testing
	Seed int64
}

// GetThrowResultMessageInput contains the input for GetThrowResultMessage
type GetThrowResultMessageInput struct {
	Throw *models.Throw
}

// GetThrowResultMessageOutput contains the output for GetThrowResultMessage
type GetThrowResultMessageOutput struct {
	Outcome ThrowOutcome
	Message string
}
