package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/reporting"
)

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	flush, err := reporting.Init(cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize error reporting, continuing without it")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = newRootCmd(cfg).ExecuteContext(ctx)
	stop()
	flush()

	if err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
