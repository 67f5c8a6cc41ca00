package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		config = utils.DefaultConfig()
	}
	logger := newLogger(config.LogLevel)
	if err != nil {
		logger.Warn("using default configuration", "error", err)
	}

	g, err := newGame(config, logger)
	if err != nil {
		logger.Error("failed to set up game", "error", err)
		os.Exit(1)
	}
	logger.Info("starting", "living", g.board.Population(), "interactive", config.Interactive)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Interactive {
		var screen tcell.Screen
		if screen, err = tcell.NewScreen(); err == nil {
			err = runInteractive(ctx, g, config, screen)
		}
	} else {
		err = runPlain(ctx, g, config, &model.TerminalRenderer{})
	}

	logSummary(g)
	if err != nil {
		logger.Error("game stopped", "error", err)
		stop()
		os.Exit(1)
	}
}
