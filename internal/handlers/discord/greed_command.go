package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/models"
	"github.com/KirkDiggler/greed/internal/services/messaging"
	"github.com/KirkDiggler/greed/internal/services/scoring"
	"github.com/bwmarrin/discordgo"
)

// GreedCommand handles the /greed command
type GreedCommand struct {
	BaseCommand
	scoringService   scoring.Service
	messagingService messaging.Service
	historyLimit     int
}

// NewGreedCommand creates a new greed command handler
func NewGreedCommand(scoringService scoring.Service, messagingService messaging.Service, historyLimit int) *GreedCommand {
	return &GreedCommand{
		BaseCommand: BaseCommand{
			Name:        "greed",
			Description: "Score dice throws in the game of greed",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roll",
					Description: "Roll the dice and collect your coins",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "score",
					Description: "Score a throw you made with real dice",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "dice",
							Description: "The faces showing, e.g. 62663",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recent throws in this channel",
				},
			},
		},
		scoringService:   scoringService,
		messagingService: messagingService,
		historyLimit:     historyLimit,
	}
}

// Handle processes a Discord interaction for the greed command
func (c *GreedCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	userID, username := interactionUser(i)

	switch sub := data.Options[0]; sub.Name {
	case "roll":
		return c.handleRoll(s, i, i.ChannelID, userID, username)
	case "score":
		return c.handleScore(s, i, i.ChannelID, userID, username, optionString(sub.Options, "dice"))
	case "history":
		return c.handleHistory(s, i, i.ChannelID)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleRoll handles the roll subcommand and the roll again button
func (c *GreedCommand) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, username string) error {
	output, err := c.scoringService.RollThrow(context.Background(), &scoring.RollThrowInput{
		PlayerID:   userID,
		PlayerName: username,
		ChannelID:  channelID,
	})
	if err != nil {
		log.Printf("Error rolling throw: %v", err)
		return RespondWithError(s, i, "The dice fell off the table. Try again in a moment.")
	}

	return RespondWithEmbed(s, i, renderThrowEmbed(output.Throw, c.quip(output.Throw)), rollAgainComponents())
}

// handleScore handles the score subcommand
func (c *GreedCommand) handleScore(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, username, raw string) error {
	faces, err := dice.ParseFaces(raw)
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not read `%s`: use the digits 1 to 6, e.g. `62663`.", raw))
	}

	output, err := c.scoringService.ScoreThrow(context.Background(), &scoring.ScoreThrowInput{
		PlayerID:   userID,
		PlayerName: username,
		ChannelID:  channelID,
		Faces:      faces,
	})
	if err != nil {
		if errors.Is(err, scoring.ErrTooManyDice) {
			return RespondWithError(s, i, "That is more dice than anyone throws at once.")
		}
		log.Printf("Error scoring throw %q: %v", raw, err)
		return RespondWithError(s, i, fmt.Sprintf("Error scoring throw: %v", err))
	}

	return RespondWithEmbed(s, i, renderThrowEmbed(output.Throw, c.quip(output.Throw)), nil)
}

// handleHistory handles the history subcommand
func (c *GreedCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.scoringService.GetChannelThrows(context.Background(), &scoring.GetChannelThrowsInput{
		ChannelID: channelID,
		Limit:     c.historyLimit,
	})
	if err != nil {
		log.Printf("Error getting channel throws: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Error getting history: %v", err))
	}

	return RespondWithEmbed(s, i, renderHistoryEmbed(output.Throws), nil)
}

// quip asks the messaging service for a line about the throw. Failures only cost the footer.
func (c *GreedCommand) quip(throw *models.Throw) string {
	if c.messagingService == nil {
		return ""
	}

	output, err := c.messagingService.GetThrowResultMessage(context.Background(), &messaging.GetThrowResultMessageInput{
		Throw: throw,
	})
	if err != nil {
		log.Printf("Error getting throw message: %v", err)
		return ""
	}
	return output.Message
}

// optionString finds a string option by name
func optionString(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}
