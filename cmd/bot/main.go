package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/greed/internal/calculator"
	"github.com/KirkDiggler/greed/internal/common/clock"
	"github.com/KirkDiggler/greed/internal/common/uuid"
	"github.com/KirkDiggler/greed/internal/config"
	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/handlers/discord"
	"github.com/KirkDiggler/greed/internal/repositories/throw"
	"github.com/KirkDiggler/greed/internal/rules"
	"github.com/KirkDiggler/greed/internal/services/messaging"
	"github.com/KirkDiggler/greed/internal/services/scoring"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	throwRepo, err := throw.NewRedis(&throw.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create throw repository: %v", err)
	}

	// The reward table is built once and shared by every throw
	catalog, err := rules.NewCatalog(rules.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to build rule catalog: %v", err)
	}

	rewardCalculator, err := calculator.New(&calculator.Config{
		Catalog: catalog,
	})
	if err != nil {
		log.Fatalf("Failed to create reward calculator: %v", err)
	}

	scoringSvc, err := scoring.New(&scoring.Config{
		DiceCount:     cfg.DiceCount,
		ThrowRepo:     throwRepo,
		Calculator:    rewardCalculator,
		DiceRoller:    dice.NewRoller(&dice.Config{}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create scoring service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.Config{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		HistoryLimit:     cfg.HistoryLimit,
		ScoringService:   scoringSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Bot has been shut down")
}
