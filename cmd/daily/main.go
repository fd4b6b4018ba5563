package main

import (
	"context"
	"fmt"
	"os"

	"gold-premium-bot/internal/interfaces"
	"gold-premium-bot/internal/logger"
	"gold-premium-bot/internal/notify"
	"gold-premium-bot/internal/trace"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	defer func() { _ = trace.Shutdown(ctx) }()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return 1
	}

	notifier, err := initializeNotifier(ctx, cfg)
	if err != nil {
		// Without a delivery channel even the incident report has nowhere
		// to go; the local log is all that is left.
		logger.ErrorWithErr(ctx, "Notifier unavailable, aborting", err)
		return 1
	}

	eng := buildEngine(ctx, cfg, notifier)
	if err := eng.Run(ctx); err != nil {
		logger.ErrorWithErr(ctx, "Daily premium run failed", err)
		reportIncident(ctx, notifier, err)
		return 1
	}
	return 0
}

// reportIncident sends the fatal error to the subscriber as a last resort,
// bounded to the channel's size limit. A failure here is only logged.
func reportIncident(ctx context.Context, notifier interfaces.Notifier, runErr error) {
	msg := notify.Truncate(fmt.Sprintf("🔥 치명적인 오류 발생: %T - %v", runErr, runErr))
	if err := notifier.SendText(ctx, msg); err != nil {
		logger.ErrorWithErr(ctx, "Failed to deliver incident notification", err,
			"original_error", runErr.Error())
	}
}
