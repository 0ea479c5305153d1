package calculator

import (
	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/models"
)

// Throw binds the dice of one throw to the calculator that scores it
type Throw struct {
	dice       dice.Dice
	calculator Calculator
}

// NewThrow creates a throw of the faces. A nil calculator uses the standard reward table.
func NewThrow(calc Calculator, faces []models.Face) *Throw {
	if calc == nil {
		calc = defaultCalculator
	}
	return &Throw{
		dice:       dice.FromFaces(faces),
		calculator: calc,
	}
}

// Dice returns a copy of the thrown dice
func (t *Throw) Dice() dice.Dice {
	return t.dice.Clone()
}

// Reward returns the coins the throw is worth
func (t *Throw) Reward() models.Coins {
	return t.calculator.Calculate(t.dice.Clone())
}
