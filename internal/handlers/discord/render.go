package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/greed/internal/models"
	"github.com/bwmarrin/discordgo"
)

const (
	colorWin   = 0x00ff00
	colorBust  = 0x808080
	colorError = 0xff0000
)

var faceEmoji = map[models.Face]string{
	models.FaceOne:   "⚀",
	models.FaceTwo:   "⚁",
	models.FaceThree: "⚂",
	models.FaceFour:  "⚃",
	models.FaceFive:  "⚄",
	models.FaceSix:   "⚅",
}

// renderFaces shows faces as die glyphs followed by their digits
func renderFaces(faces []models.Face) string {
	if len(faces) == 0 {
		return "-"
	}

	glyphs := make([]string, len(faces))
	var digits strings.Builder
	for i, f := range faces {
		glyphs[i] = faceEmoji[f]
		digits.WriteString(f.String())
	}
	return fmt.Sprintf("%s  `%s`", strings.Join(glyphs, " "), digits.String())
}

// renderThrowEmbed builds the embed describing a scored throw. An empty quip adds no footer.
func renderThrowEmbed(throw *models.Throw, quip string) *discordgo.MessageEmbed {
	verb := "threw"
	if throw.Rolled {
		verb = "rolled"
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s %s %s", throw.PlayerName, verb, renderFaces(throw.Faces)),
		Description: fmt.Sprintf("**%d coins**", throw.Reward),
		Color:       colorWin,
	}

	if quip != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: quip}
	}

	if throw.Reward == 0 {
		embed.Description = "No scoring dice. **0 coins**"
		embed.Color = colorBust
		return embed
	}

	for _, step := range throw.AppliedRules {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   step.Rule,
			Value:  fmt.Sprintf("%s → %d", renderFaces(step.Consumed), step.Reward),
			Inline: false,
		})
	}

	return embed
}

// renderHistoryEmbed builds the embed listing recent throws
func renderHistoryEmbed(throws []*models.Throw) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Recent throws",
		Color: colorWin,
	}

	if len(throws) == 0 {
		embed.Description = "Nobody has thrown here yet. Try `/greed roll`."
		return embed
	}

	lines := make([]string, 0, len(throws))
	for _, t := range throws {
		lines = append(lines, fmt.Sprintf("**%s** %s: %d", t.PlayerName, renderFaces(t.Faces), t.Reward))
	}
	embed.Description = strings.Join(lines, "\n")

	return embed
}

// rollAgainComponents is the button row offered under a throw
func rollAgainComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Roll Again",
					Style:    discordgo.PrimaryButton,
					CustomID: ButtonRollDice,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🎲",
					},
				},
			},
		},
	}
}
