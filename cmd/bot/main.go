package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/cuentasclaras/internal/board"
	"github.com/KirkDiggler/cuentasclaras/internal/common/clock"
	"github.com/KirkDiggler/cuentasclaras/internal/common/uuid"
	"github.com/KirkDiggler/cuentasclaras/internal/denomination"
	"github.com/KirkDiggler/cuentasclaras/internal/dice"
	"github.com/KirkDiggler/cuentasclaras/internal/handlers/discord"
	"github.com/KirkDiggler/cuentasclaras/internal/missions"
	"github.com/KirkDiggler/cuentasclaras/internal/money"
	"github.com/KirkDiggler/cuentasclaras/internal/repositories/ledger"
	"github.com/KirkDiggler/cuentasclaras/internal/repositories/session"
	gameService "github.com/KirkDiggler/cuentasclaras/internal/services/game"
	"github.com/KirkDiggler/cuentasclaras/internal/services/messaging"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	ledgerRepo, err := ledger.NewRedis(&ledger.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create ledger repository: %v", err)
	}

	// Load content
	topology, err := board.New(nil)
	if err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}

	denominations, err := denomination.Load()
	if err != nil {
		log.Fatalf("Failed to load denominations: %v", err)
	}

	missionCatalog, err := missions.Load()
	if err != nil {
		log.Fatalf("Failed to load missions: %v", err)
	}
	log.Printf("Loaded %d missions and %d denominations", missionCatalog.Len(), len(denominations.Ordered()))

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{})
	formatter := money.Default()
	updates := discord.NewUpdateQueue(256)

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		StepInterval:   cfg.StepInterval,
		DefaultMinutes: cfg.DefaultMinutes,
		SessionRepo:    sessionRepo,
		LedgerRepo:     ledgerRepo,
		Board:          topology,
		Missions:       missionCatalog,
		Denominations:  denominations,
		DiceRoller:     diceRoller,
		Clock:          &clock.DefaultClock{},
		UUIDGenerator:  uuid.New(),
		Listener:       updates,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Roller:    diceRoller,
		Formatter: formatter,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
		Updates:          updates,
		Board:            topology,
		Denominations:    denominations,
		Formatter:        formatter,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Pick up sessions that were running before a restart
	if err := gameSvc.Resume(context.Background()); err != nil {
		log.Printf("Failed to resume sessions: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Stop session loops first so no update arrives after the bot is gone
	gameSvc.Close()

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
