// quantum is a terminal math-puzzle game about bending reality, time and gravity.
//
// Usage:
//
//	quantum play             - Play in this terminal
//	quantum serve            - Start SSH server for remote play
//	quantum scores           - Show the run history
//	quantum puzzle           - Print sample puzzles
//	quantum config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Game config YAML
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.quantum/scores.db)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-shift/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quantum",
	Short: "Quantum Shift - solve math puzzles while bending reality",
	Long: `Quantum Shift is a terminal math-puzzle game. Answer questions to earn
points and energy, then spend energy to switch reality, reverse time or flip
gravity.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the run history
  puzzle   - Print sample puzzles
  config   - Print the effective configuration

Examples:
  quantum play
  quantum play --config ./my-quantum.yaml
  quantum serve --ssh :2222
  quantum scores --player ada
  quantum puzzle --quantum --difficulty hard`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.quantum/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(puzzleCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings resolves the game config and process settings. Flags set on
// the command line win over QUANTUM_* variables.
func loadSettings(cmd *cobra.Command) (config.Config, config.Env, error) {
	e, err := config.LoadEnv()
	if err != nil {
		return config.Config{}, e, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, e, err
	}
	cfg.ApplyEnv(e)

	flags := cmd.Flags()
	if flags.Changed("fps") {
		e.FPS = flagFPS
	}
	if flags.Changed("seed") {
		e.Seed = flagSeed
	}
	if flags.Changed("db") {
		e.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		e.LogLevel = flagLogLevel
	}
	return cfg, e, nil
}

// newLogger creates a timestamped logger. Unknown levels fall back to info.
func newLogger(w io.Writer, prefix, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
