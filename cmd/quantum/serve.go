package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-shift/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the quantum SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Runs are stored per-server
(all users share the same score history, keyed by SSH user name).
Remote players hear the terminal bell only.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.quantum/host_key

Examples:
  quantum serve                           # Listen on :23234 with auto-generated key
  quantum serve --ssh :2222               # Listen on port 2222
  quantum serve --host-key ./my_host_key  # Use specific host key
  quantum serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, e, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	addr := e.SSHAddr
	if cmd.Flags().Changed("ssh") {
		addr = flagSSHAddr
	}

	level, err := log.ParseLevel(e.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     addr,
		HostKeyPath: flagHostKey,
		DBPath:      e.DBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    e.FPS,
		LogLevel:    level,
		Game:        cfg,
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	fmt.Printf("Starting quantum SSH server on %s\n", addr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
