package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quantum-shift/internal/audio"
	"github.com/vovakirdan/quantum-shift/internal/core"
	"github.com/vovakirdan/quantum-shift/internal/game"
	"github.com/vovakirdan/quantum-shift/internal/platform/tui"
	"github.com/vovakirdan/quantum-shift/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  WASD/Arrows   - Move
  Space         - Switch reality (10 energy)
  T/Shift+Tab   - Reverse time (15 energy)
  G             - Flip gravity (5 energy)
  Enter         - Answer the puzzle (Esc leaves the answer field)
  P             - Pause
  V             - Sound panel (arrows change volume)
  Ctrl+R        - Reset
  Ctrl+S        - Screenshot
  Q/Ctrl+C      - Quit

Sound files are read from audio.dir (or QUANTUM_SOUNDS) as <name>.wav.
Missing files fall back to the terminal bell.

Logs are written to ~/.quantum/quantum.log.

Examples:
  quantum play
  quantum play --player ada
  quantum play --seed 42 --fps 60`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your runs (default: $USER)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, e, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// Bubble Tea owns the terminal, so logs go to a file.
	logger, closeLog := openPlayLog(e.LogLevel)
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: e.FPS,
		Seed:     e.Seed,
	}

	opts := []audio.Option{
		audio.WithLogger(logger.WithPrefix("audio")),
		audio.WithVolumes(cfg.Audio.MusicVolume, cfg.Audio.SFXVolume),
	}
	if cfg.Audio.Dir != "" {
		opts = append(opts, audio.WithDir(expandHome(cfg.Audio.Dir)))
	}
	sink := audio.NewTerminalSink(os.Stdout, cfg.Audio.Bell)
	sound := audio.NewManager(sink, opts...)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sound.Start(ctx)

	store, err := storage.Open(e.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	g := game.New(cfg, sound)
	runErr := tui.Run(g, store, rc,
		tui.WithPlayer(player),
		tui.WithSound(sound),
		tui.WithCues(sink),
		tui.WithLogger(logger),
	)

	// Close store before returning
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("run game: %w", runErr)
	}
	return nil
}

// openPlayLog opens ~/.quantum/quantum.log for appending. It falls back to a
// discarding logger when the file cannot be opened.
func openPlayLog(level string) (*log.Logger, func()) {
	path := expandHome(filepath.Join("~", ".quantum", "quantum.log"))
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(filepath.Dir(path), 0o755)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := newLogger(f, "quantum", level)
	return logger, func() { f.Close() }
}
