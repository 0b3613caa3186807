package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"classic-snake/game"
	"classic-snake/game/manager"
	"classic-snake/theme"
	"classic-snake/tui"
	"classic-snake/ui"
)

func main() {
	speed := flag.Int("speed", 100, "Tick interval in milliseconds (lower = faster)")
	useTUI := flag.Bool("tui", false, "Play in the terminal instead of opening a window")
	light := flag.Bool("light", false, "Use the light colour theme")
	safeFood := flag.Bool("safe-food", false, "Never place food on the snake's body")
	seed := flag.Uint64("seed", 0, "Seed for food placement (0 = seed from the clock)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	logJSON := flag.Bool("log-json", false, "Write logs as JSON")
	flag.Parse()

	logger, err := newLogger(*logLevel, *logJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	if *speed <= 0 {
		logger.Error("invalid speed", "speed", *speed)
		os.Exit(2)
	}

	policy := manager.FoodAnywhere
	if *safeFood {
		policy = manager.FoodFreeCell
	}

	// Bubble Tea owns the terminal; keep round logs off it unless debugging.
	gameLogger := logger
	if *useTUI && *logLevel != "debug" {
		gameLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g := game.NewGame(game.Config{
		Interval:   time.Duration(*speed) * time.Millisecond,
		FoodPolicy: policy,
		Seed:       *seed,
		Logger:     gameLogger,
	})
	palette := theme.Select(*light)

	if *useTUI {
		if err := tui.Run(g, palette); err != nil {
			logger.Error("terminal ui stopped", "error", err)
			os.Exit(1)
		}
	} else {
		ui.Run(g, palette)
	}

	stats := g.Stats()
	logger.Info("session finished",
		"session", g.UUID,
		"rounds", stats.RoundsPlayed,
		"best", stats.HighScore,
		"avg_score", stats.AverageScore,
		"avg_duration", stats.AverageDuration)
}

func newLogger(level string, asJSON bool) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if asJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}
