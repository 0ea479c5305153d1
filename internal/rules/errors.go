package rules

// RuleError is a custom error type for reward table errors
type RuleError string

// Error implements the error interface
func (e RuleError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     RuleError = "config cannot be nil"
	ErrInvalidConfig RuleError = "invalid reward table"
)
