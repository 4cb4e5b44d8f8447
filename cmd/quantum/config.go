package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-shift/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Config is searched in order: --config, ~/.quantum/config.yaml,
./configs/quantum.yaml, then the built-in defaults.

Examples:
  quantum config
  quantum config --default > ~/.quantum/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
