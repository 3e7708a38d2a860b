package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"wingman/pkg/bot"
	"wingman/pkg/config"
	"wingman/pkg/gpt"
	"wingman/pkg/session"
	"wingman/pkg/templates"
)

func main() {
	// Load config.yml
	cfg, err := config.LoadConfig("config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load .env for secrets
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	token := os.Getenv("DISCORD_TOKEN")
	openaiKey := os.Getenv("OPENAI_API_KEY")

	if token == "" {
		log.Fatal("Missing required environment variable: DISCORD_TOKEN")
	}
	if openaiKey == "" {
		log.Fatal("Missing required environment variable: OPENAI_API_KEY")
	}

	// Initialize the language model client
	gptClient := gpt.NewClient(openaiKey, os.Getenv("OPENAI_BASE_URL"), gpt.Config{
		Model:       cfg.Model.Name,
		Temperature: cfg.Model.Temperature,
		TopP:        cfg.Model.TopP,
		MaxTokens:   cfg.Model.MaxTokens,
		Timeout:     time.Duration(cfg.Request.TimeoutSeconds) * time.Second,
		Retries:     cfg.Request.Retries,
	})

	// Load message and prompt templates
	tpl := templates.NewStore()
	if err := tpl.LoadDir(cfg.Paths.Templates); err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	// Initialize the session store: Redis when configured, in-memory otherwise
	ttl := time.Duration(cfg.Session.TTLHours * float64(time.Hour))
	var store session.Store
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisStore, err := session.NewRedisStore(redisURL, "wingman", ttl)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
		log.Println("Using Redis session store")
	} else {
		memStore := session.NewMemoryStore(ttl, time.Duration(cfg.Session.SweepMinutes*float64(time.Minute)))
		defer memStore.Close()
		store = memStore
		log.Println("Using in-memory session store")
	}

	// Initialize Bot Handler
	handler := bot.NewHandler(gptClient, store, tpl, cfg.Paths.Assets)

	// Create Discord Session
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}

	// Register Handlers
	dg.AddHandler(handler.MessageCreate)
	dg.AddHandler(handler.InteractionCreate)

	// Open Connection
	if err := dg.Open(); err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	// Set Bot ID in handler (so it can ignore itself)
	handler.SetBotID(dg.State.User.ID)

	// Register slash commands (empty string = global, or a guild ID for faster updates during development)
	guildID := os.Getenv("DISCORD_GUILD_ID")
	registeredCommands, err := bot.RegisterSlashCommands(dg, guildID)
	if err != nil {
		log.Fatalf("Error registering slash commands: %v", err)
	}

	defer func() {
		if err := bot.UnregisterSlashCommands(dg, guildID, registeredCommands); err != nil {
			log.Printf("Error unregistering slash commands: %v", err)
		}
	}()

	log.Println("Wingman is now running. Press CTRL-C to exit.")

	err = dg.UpdateStatusComplex(discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{
			{
				Name:  "Custom Status",
				Type:  discordgo.ActivityTypeCustom,
				State: "your personal wingman 😎",
			},
		},
		Status: "online",
	})
	if err != nil {
		log.Printf("Error setting custom status: %v", err)
	}

	// Wait for signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}
