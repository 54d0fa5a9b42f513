package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/tavernkeep/tavernkeep/internal/clients/files"
	"github.com/tavernkeep/tavernkeep/internal/clients/rules"
	"github.com/tavernkeep/tavernkeep/internal/conversation"
	"github.com/tavernkeep/tavernkeep/internal/orchestrators/session"
	"github.com/tavernkeep/tavernkeep/internal/redis"
	"github.com/tavernkeep/tavernkeep/internal/repositories/roster"
	"github.com/tavernkeep/tavernkeep/internal/transport"
)

type config struct {
	RedisAddr    string        `env:"TAVERNKEEP_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisTLS     bool          `env:"TAVERNKEEP_REDIS_TLS" envDefault:"false"`
	RulesBaseURL string        `env:"TAVERNKEEP_RULES_BASE_URL"`
	RulesTimeout time.Duration `env:"TAVERNKEEP_RULES_TIMEOUT" envDefault:"30s"`
	ConsoleUser  string        `env:"TAVERNKEEP_CONSOLE_USER" envDefault:"console"`
	LogLevel     slog.Level    `env:"TAVERNKEEP_LOG_LEVEL" envDefault:"info"`
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bot on a console transport",
	Long:  `Run the bot against Redis storage, reading events from the terminal. Lines starting with "/" press buttons, "@image <path>" and "@voice <path>" upload files, anything else is text.`,
	RunE:  runBot,
}

func runBot(cmd *cobra.Command, _ []string) error {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal, stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{UseTLS: cfg.RedisTLS})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}()

	repo, err := roster.NewRedis(&roster.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create roster repository: %w", err)
	}

	fileStore, err := files.NewRedis(&files.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create file store: %w", err)
	}

	rulesClient, err := rules.New(&rules.Config{
		BaseURL:     cfg.RulesBaseURL,
		HTTPTimeout: cfg.RulesTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create rules client: %w", err)
	}

	engine, err := conversation.New(&conversation.Config{
		DiceRoller: dice.DefaultRoller,
		Rules:      rulesClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create conversation engine: %w", err)
	}

	console, err := transport.NewConsole(&transport.ConsoleConfig{UserID: cfg.ConsoleUser})
	if err != nil {
		return fmt.Errorf("failed to create console transport: %w", err)
	}

	svc, err := session.New(&session.Config{
		Repository: repo,
		Engine:     engine,
		Transport:  console,
		Files:      fileStore,
	})
	if err != nil {
		return fmt.Errorf("failed to create session orchestrator: %w", err)
	}

	errChan := make(chan error, 2)
	go func() {
		errChan <- console.Run(ctx)
	}()
	go func() {
		errChan <- svc.Run(ctx)
	}()

	slog.Info("tavernkeep running", "redis", cfg.RedisAddr, "user", cfg.ConsoleUser)

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		if err != nil && err != context.Canceled {
			return err
		}
		return nil
	}
}
