package scoring

// ScoringError is a custom error type for scoring errors
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidInput     ScoringError = "invalid input"
	ErrNoDice           ScoringError = "throw has no dice"
	ErrTooManyDice      ScoringError = "throw has too many dice"
	ErrInvalidFace      ScoringError = "throw has an invalid face"
	ErrThrowNotFound    ScoringError = "throw not found"
	ErrNilConfig        ScoringError = "config cannot be nil"
	ErrNilThrowRepo     ScoringError = "throw repository cannot be nil"
	ErrNilDiceRoller    ScoringError = "dice roller cannot be nil"
	ErrNilClock         ScoringError = "clock cannot be nil"
	ErrNilUUIDGenerator ScoringError = "UUID generator cannot be nil"
)
