package config

import (
	_ "embed"
)

//go:embed defaults/quantum.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rules: RulesConfig{
			RealityCost:     10,
			TimeCost:        15,
			GravityCost:     5,
			MaxEnergy:       100,
			SolveReward:     20,
			PointsPerPuzzle: 100,
			AnswerTolerance: 0.001,
		},
		Movement: MovementConfig{
			NormalStep:  1.0,
			QuantumStep: 1.5,
		},
		Physics: PhysicsConfig{
			Gravity:      9.81,
			TimeDilation: 0.5,
			Uncertainty:  0.05,
			Lerp:         0.1,
			TrailLength:  20,
			QuantumScale: 1.2,
		},
		Display: DisplayConfig{
			FeedbackSeconds: 1.5,
			LowEnergy:       20,
		},
		Audio: AudioConfig{
			Dir:         "",
			MusicVolume: 0.3,
			SFXVolume:   0.5,
			Bell:        true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
