package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gold-premium-bot/internal/chart"
	"gold-premium-bot/internal/engine"
	"gold-premium-bot/internal/history"
	"gold-premium-bot/internal/interfaces"
	"gold-premium-bot/internal/llm"
	"gold-premium-bot/internal/llm/llmobs"
	"gold-premium-bot/internal/logger"
	"gold-premium-bot/internal/marketdata"
	"gold-premium-bot/internal/marketdata/quoteobs"
	"gold-premium-bot/internal/notify"
	"gold-premium-bot/internal/store"
	"gold-premium-bot/internal/trace"

	"github.com/joho/godotenv"
)

// initializeSystem initializes environment, logger and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logger
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize tracer
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// initializeNotifier builds the Telegram notifier from the environment. The
// destination identity is the one hard requirement of a run.
func initializeNotifier(ctx context.Context, cfg *store.Config) (interfaces.Notifier, error) {
	token := os.Getenv("TELEGRAM_TOKEN")
	chatID := os.Getenv("TELEGRAM_TO")
	if token == "" || chatID == "" {
		return nil, errors.New("TELEGRAM_TOKEN or TELEGRAM_TO is not set in environment")
	}

	return notify.NewTelegram(notify.Params{Token: token, ChatID: chatID},
		time.Duration(cfg.TimeoutSeconds)*time.Second), nil
}

// buildEngine wires the run pipeline with observability middleware
func buildEngine(ctx context.Context, cfg *store.Config, notifier interfaces.Notifier) *engine.Engine {
	quotes := quoteobs.Wrap(marketdata.NewYahoo(time.Duration(cfg.TimeoutSeconds) * time.Second))
	histStore := history.New(cfg.HistoryFile)
	summarizer := llmobs.Wrap(llm.NewSummarizer(cfg))
	renderer := chart.NewRenderer(cfg.Chart.Width, cfg.Chart.Height)

	if os.Getenv("OPENAI_API_KEY") == "" {
		logger.Warn(ctx, "OPENAI_API_KEY not set - AI summary degraded to placeholder")
	}

	return engine.New(cfg, quotes, histStore, summarizer, notifier, renderer)
}
