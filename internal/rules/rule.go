package rules

import (
	"fmt"

	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/models"
)

// Rule is a scoring pattern that can match part of a throw
type Rule interface {
	// Name identifies the rule in score breakdowns
	Name() string

	// IsSatisfied reports whether the rule matches the dice
	IsSatisfied(d dice.Dice) bool

	// Reward is the coins the rule pays for the dice
	Reward(d dice.Dice) models.Coins

	// Consume returns the dice left after the rule takes its match.
	// The argument is not modified.
	Consume(d dice.Dice) dice.Dice
}

// Apply scores the dice with the rule. An unsatisfied rule pays nothing and
// leaves the dice as they are.
func Apply(r Rule, d dice.Dice) (models.Coins, dice.Dice) {
	if !r.IsSatisfied(d) {
		return 0, d
	}
	return r.Reward(d), r.Consume(d)
}

// ThreeOrMore pays for three or more of a face. Every die beyond the second pays the face value.
type ThreeOrMore struct {
	face  models.Face
	value models.Coins
}

// NewThreeOrMore creates a three-or-more rule for the face
func NewThreeOrMore(face models.Face, value models.Coins) *ThreeOrMore {
	return &ThreeOrMore{face: face, value: value}
}

func (r *ThreeOrMore) Name() string {
	return fmt.Sprintf("three or more %ss", r.face)
}

func (r *ThreeOrMore) IsSatisfied(d dice.Dice) bool {
	return d.Occurrence(r.face) >= 3
}

func (r *ThreeOrMore) Reward(d dice.Dice) models.Coins {
	n := d.Occurrence(r.face)
	if n < 2 {
		return 0
	}
	return models.Coins(n-2) * r.value
}

func (r *ThreeOrMore) Consume(d dice.Dice) dice.Dice {
	remaining := d.Clone()
	remaining.TakeAll(r.face)
	return remaining
}

// TwoOrLess pays for one or two loose dice of a face
type TwoOrLess struct {
	face  models.Face
	value models.Coins
}

// NewTwoOrLess creates a two-or-less rule for the face
func NewTwoOrLess(face models.Face, value models.Coins) *TwoOrLess {
	return &TwoOrLess{face: face, value: value}
}

func (r *TwoOrLess) Name() string {
	return fmt.Sprintf("loose %ss", r.face)
}

func (r *TwoOrLess) IsSatisfied(d dice.Dice) bool {
	n := d.Occurrence(r.face)
	return n > 0 && n <= 2
}

func (r *TwoOrLess) Reward(d dice.Dice) models.Coins {
	return models.Coins(d.Occurrence(r.face)) * r.value
}

func (r *TwoOrLess) Consume(d dice.Dice) dice.Dice {
	remaining := d.Clone()
	remaining.TakeAll(r.face)
	return remaining
}

// NoMoreThanOne pays a flat bonus when a run of distinct single faces shows
// (five dice, no face repeated) and clears the throw.
type NoMoreThanOne struct {
	value  models.Coins
	length int
}

// NewNoMoreThanOne creates a straight rule that needs length single faces
func NewNoMoreThanOne(value models.Coins, length int) *NoMoreThanOne {
	return &NoMoreThanOne{value: value, length: length}
}

func (r *NoMoreThanOne) Name() string {
	return "straight"
}

func (r *NoMoreThanOne) IsSatisfied(d dice.Dice) bool {
	singles := 0
	for _, f := range models.AllFaces {
		if d.Occurrence(f) == 1 {
			singles++
		}
	}
	return singles == r.length
}

func (r *NoMoreThanOne) Reward(dice.Dice) models.Coins {
	return r.value
}

func (r *NoMoreThanOne) Consume(dice.Dice) dice.Dice {
	return dice.New()
}
