// Package config provides YAML-based game configuration loading and the
// environment overrides used by the command line.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/quantum-shift/internal/physics"
	"github.com/vovakirdan/quantum-shift/internal/state"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all tunable game parameters.
type Config struct {
	Rules    RulesConfig    `yaml:"rules"`
	Movement MovementConfig `yaml:"movement"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Display  DisplayConfig  `yaml:"display"`
	Audio    AudioConfig    `yaml:"audio"`
}

// RulesConfig defines energy costs and rewards.
type RulesConfig struct {
	RealityCost     int     `yaml:"reality_cost"`
	TimeCost        int     `yaml:"time_cost"`
	GravityCost     int     `yaml:"gravity_cost"`
	MaxEnergy       int     `yaml:"max_energy"`
	SolveReward     int     `yaml:"solve_reward"`
	PointsPerPuzzle int     `yaml:"points_per_puzzle"`
	AnswerTolerance float64 `yaml:"answer_tolerance"`
}

// MovementConfig defines step sizes per key press.
type MovementConfig struct {
	NormalStep  float64 `yaml:"normal_step"`
	QuantumStep float64 `yaml:"quantum_step"`
}

// PhysicsConfig defines the per-frame visual physics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	TimeDilation float64 `yaml:"time_dilation"`
	Uncertainty  float64 `yaml:"uncertainty"`
	Lerp         float64 `yaml:"lerp"`          // Fraction of the remaining distance covered per frame
	TrailLength  int     `yaml:"trail_length"`  // Points kept in quantum reality
	QuantumScale float64 `yaml:"quantum_scale"` // Player scale target in quantum reality
}

// DisplayConfig defines HUD behavior.
type DisplayConfig struct {
	FeedbackSeconds float64 `yaml:"feedback_seconds"`
	LowEnergy       int     `yaml:"low_energy"` // Warn below this energy
}

// AudioConfig defines sound assets and volumes.
type AudioConfig struct {
	Dir         string  `yaml:"dir"` // Empty means synthesized tones only
	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`
	Bell        bool    `yaml:"bell"`
}

// StateRules converts the rules section for the store.
func (c Config) StateRules() state.Rules {
	return state.Rules{
		RealityCost:     c.Rules.RealityCost,
		TimeCost:        c.Rules.TimeCost,
		GravityCost:     c.Rules.GravityCost,
		MaxEnergy:       c.Rules.MaxEnergy,
		SolveReward:     c.Rules.SolveReward,
		PointsPerPuzzle: c.Rules.PointsPerPuzzle,
		AnswerTolerance: c.Rules.AnswerTolerance,
	}
}

// PhysicsParams converts the physics section for the per-frame helpers.
func (c Config) PhysicsParams() physics.Params {
	return physics.Params{
		Gravity:      c.Physics.Gravity,
		TimeDilation: c.Physics.TimeDilation,
		Uncertainty:  c.Physics.Uncertainty,
	}
}

// Validate reports every out-of-range value.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, field string, v any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s = %v: %w", field, v, ErrInvalid))
		}
	}

	r := c.Rules
	check(r.RealityCost >= 0, "rules.reality_cost", r.RealityCost)
	check(r.TimeCost >= 0, "rules.time_cost", r.TimeCost)
	check(r.GravityCost >= 0, "rules.gravity_cost", r.GravityCost)
	check(r.MaxEnergy > 0, "rules.max_energy", r.MaxEnergy)
	check(r.SolveReward >= 0, "rules.solve_reward", r.SolveReward)
	check(r.PointsPerPuzzle >= 0, "rules.points_per_puzzle", r.PointsPerPuzzle)
	check(r.AnswerTolerance > 0, "rules.answer_tolerance", r.AnswerTolerance)

	check(c.Movement.NormalStep > 0, "movement.normal_step", c.Movement.NormalStep)
	check(c.Movement.QuantumStep > 0, "movement.quantum_step", c.Movement.QuantumStep)

	p := c.Physics
	check(p.Uncertainty >= 0, "physics.uncertainty", p.Uncertainty)
	check(p.Lerp > 0 && p.Lerp <= 1, "physics.lerp", p.Lerp)
	check(p.TrailLength >= 0, "physics.trail_length", p.TrailLength)
	check(p.QuantumScale > 0, "physics.quantum_scale", p.QuantumScale)

	check(c.Display.FeedbackSeconds >= 0, "display.feedback_seconds", c.Display.FeedbackSeconds)

	a := c.Audio
	check(a.MusicVolume >= 0 && a.MusicVolume <= 1, "audio.music_volume", a.MusicVolume)
	check(a.SFXVolume >= 0 && a.SFXVolume <= 1, "audio.sfx_volume", a.SFXVolume)

	return errors.Join(errs...)
}
