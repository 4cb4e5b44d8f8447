package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level settings read from the environment. Command-line
// flags take precedence when set.
type Env struct {
	DBPath    string `env:"QUANTUM_DB"        envDefault:"~/.quantum/scores.db"`
	FPS       int    `env:"QUANTUM_FPS"       envDefault:"30"`
	Seed      int64  `env:"QUANTUM_SEED"      envDefault:"0"`
	SoundsDir string `env:"QUANTUM_SOUNDS"`
	LogLevel  string `env:"QUANTUM_LOG_LEVEL" envDefault:"info"`
	SSHAddr   string `env:"QUANTUM_SSH_ADDR"  envDefault:":23234"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ApplyEnv copies environment overrides into cfg.
func (c *Config) ApplyEnv(e Env) {
	if e.SoundsDir != "" {
		c.Audio.Dir = e.SoundsDir
	}
}
