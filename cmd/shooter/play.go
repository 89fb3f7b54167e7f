package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/spectate"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagSpectate   string
	flagHoldTicks  int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: shooter).

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  P            - Pause
  R/Enter      - Restart (after game over)
  Esc/B        - Leave (when paused or after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer, slower enemy waves; tiers advance slowly
  normal - Default tuning
  hard   - Start at tier 3 with more enemies, tiers advance quickly
  fixed  - Tier never advances

Examples:
  shooter play
  shooter play shooter_survival
  shooter play --difficulty easy
  shooter play --config ./my-shooter.yaml --log shooter.log
  shooter play --spectate :8080`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a WebSocket spectator feed on this address (e.g. :8080)")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a key stays held after its last repeat")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "shooter"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'shooter list' to see available modes.")
		os.Exit(1)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	opts := tui.ModelOptions{
		Store:     store,
		HoldTicks: flagHoldTicks,
		Logger:    logger,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if flagSpectate != "" {
		hub := spectate.NewHub(logger)
		opts.Spectators = hub
		go func() {
			if err := spectate.Serve(ctx, flagSpectate, hub); err != nil {
				logger.Error("spectator feed stopped", "error", err)
			}
		}()
	}

	runErr := tui.Run(game, runtimeConfig(), opts)

	cancel()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
