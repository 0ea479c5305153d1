package models

import (
	"time"
)

// Throw is a scored throw of dice
type Throw struct {
	// ID is the unique identifier for the throw
	ID string

	// PlayerID is the Discord user ID of the player who threw
	PlayerID string

	// PlayerName is the display name of the player who threw
	PlayerName string

	// ChannelID is the Discord channel the throw was made in
	ChannelID string

	// Faces are the dice faces shown, sorted by pip count
	Faces []Face

	// Reward is the total coins awarded for the throw
	Reward Coins

	// AppliedRules lists the scoring rules in the order they were applied
	AppliedRules []*AppliedRule

	// Rolled is true when the faces were rolled by the bot rather than reported by the player
	Rolled bool

	// Timestamp is when the throw was scored
	Timestamp time.Time
}

// AppliedRule records a single scoring step
type AppliedRule struct {
	// Rule is the name of the rule that matched
	Rule string

	// Reward is the coins this step added
	Reward Coins

	// Consumed are the dice removed by this step
	Consumed []Face
}
