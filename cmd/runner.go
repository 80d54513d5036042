package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mshel/gridsnake/internal/config"
	"github.com/Mshel/gridsnake/internal/game"
	"github.com/Mshel/gridsnake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const shutdownTimeout = 2 * time.Second

func main() {
	configPath := flag.String("config", "", "Path to a Lua settings file")
	seed := flag.Uint64("seed", 0, "Seed for the random source (0 picks one from the clock)")
	flag.Parse()

	if err := run(config.ResolvePath(*configPath), *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logFile, err := setupLogging(settings)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	opts := []game.Option{game.WithPlayerName(settings.PlayerName)}
	if seed != 0 {
		opts = append(opts, game.WithRandomSource(game.NewRandomSource(seed)))
	}

	highScores, err := game.NewHighScoreService(game.SessionDSN)
	if err != nil {
		log.Warn("Leaderboard unavailable, runs will not be recorded", "error", err)
	} else {
		defer highScores.Close()
		opts = append(opts, game.WithHighScores(highScores))
	}

	gameManager := game.NewGameManager(opts...)

	// Capturing system signals so the terminal is restored on kill.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loopDone := make(chan error, 1)
	go func() {
		loopDone <- gameManager.Run(ctx)
	}()

	p := tea.NewProgram(ui.NewControllerModel(gameManager, settings), tea.WithAltScreen(), tea.WithContext(ctx))
	_, uiErr := p.Run()
	if errors.Is(uiErr, tea.ErrProgramKilled) && ctx.Err() != nil {
		uiErr = nil
	}
	stop()

	select {
	case err := <-loopDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Game loop stopped with error", "error", err)
		}
	case <-time.After(shutdownTimeout):
		log.Error("Game loop did not stop in time")
	}

	if uiErr != nil {
		return fmt.Errorf("running ui: %w", uiErr)
	}
	return nil
}

// setupLogging points the package logger at the configured file. The TUI owns
// the terminal, so without a file logs are discarded.
func setupLogging(settings config.Settings) (*os.File, error) {
	log.SetLevel(settings.Level())
	log.SetReportTimestamp(true)

	if settings.LogFile == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
