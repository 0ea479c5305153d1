package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the bot's runtime configuration, read from the environment
type Config struct {
	RedisAddr     string `env:"GREED_REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"GREED_REDIS_PASSWORD"`
	RedisDB       int    `env:"GREED_REDIS_DB"       envDefault:"0"`

	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	DiceCount    int `env:"GREED_DICE_COUNT"    envDefault:"5"`
	HistoryLimit int `env:"GREED_HISTORY_LIMIT" envDefault:"10"`
}

// Load reads the given .env files, if present, and then parses the environment.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings needed to run the bot
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return errors.New("DISCORD_TOKEN environment variable is required")
	}
	if c.DiceCount < 1 {
		return fmt.Errorf("GREED_DICE_COUNT must be positive, got %d", c.DiceCount)
	}
	return nil
}
