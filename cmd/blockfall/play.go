package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to blocks.

Controls:
  Left/Right, A/D   - Move
  Down, S           - Soft drop
  Up, W, Z          - Rotate
  Space, Enter      - Start / pause / resume
  P, Esc            - Pause
  R                 - Restart (after game over)
  M                 - Toggle sound
  Ctrl+S            - Save a text screenshot
  Q, Ctrl+C         - Quit

Examples:
  blockfall play
  blockfall play --seed 42 --fps 30
  blockfall play --config ./blocks.yaml --sound`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	// Fail before entering the alt screen on a bad config file.
	if flagConfig != "" {
		if _, err := config.LoadBlocks(flagConfig); err != nil {
			return err
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'blockfall list' to see available games)", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, runs will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Debug("starting game", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate, "size", fmt.Sprintf("%dx%d", width, height))

	err = tui.Run(game, cfg, tui.Options{
		Store:  store,
		Sound:  tui.NewBellPlayer(os.Stdout, logger, flagSound),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
