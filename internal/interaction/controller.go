// Package interaction turns discrete player input into store actions. It
// applies energy gating, suppresses input while the answer field has focus,
// and mirrors text and answers while time runs backwards.
package interaction

import (
	"github.com/vovakirdan/quantum-shift/internal/core"
	"github.com/vovakirdan/quantum-shift/internal/state"
)

// Outcome describes what an action did.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // Action not handled here or input suppressed
	OutcomeApplied                 // Store changed
	OutcomeDeclined                // Not enough energy
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeDeclined:
		return "declined"
	default:
		return "ignored"
	}
}

// Movement step sizes per reality.
const (
	NormalStep  = 1.0
	QuantumStep = 1.5
)

// Controller maps actions onto a store.
type Controller struct {
	store       *state.Store
	normalStep  float64
	quantumStep float64
}

// NewController creates a controller for store with the standard step sizes.
func NewController(store *state.Store) *Controller {
	return &Controller{
		store:       store,
		normalStep:  NormalStep,
		quantumStep: QuantumStep,
	}
}

// SetStepSizes overrides the movement magnitudes.
func (c *Controller) SetStepSizes(normal, quantum float64) {
	c.normalStep = normal
	c.quantumStep = quantum
}

// Affordable reports whether the energy in st covers the toggle behind action.
// Non-toggle actions are always affordable.
func Affordable(st state.State, rules state.Rules, action core.Action) bool {
	switch action {
	case core.ActionSwitchReality:
		return st.Energy >= rules.RealityCost
	case core.ActionReverseTime:
		return st.Energy >= rules.TimeCost
	case core.ActionFlipGravity:
		return st.Energy >= rules.GravityCost
	default:
		return true
	}
}

// Apply performs action against the store. While inputFocused is true every
// action is suppressed so typing an answer never moves the player.
func (c *Controller) Apply(action core.Action, inputFocused bool) Outcome {
	if inputFocused {
		return OutcomeIgnored
	}

	st := c.store.Snapshot()
	if action.IsMovement() {
		dx, dy := c.movement(st, action)
		c.store.MovePlayer(dx, dy)
		return OutcomeApplied
	}

	switch action {
	case core.ActionReset:
		c.store.ResetGame()
		return OutcomeApplied

	case core.ActionReverseTime, core.ActionSwitchReality, core.ActionFlipGravity:
		if !Affordable(st, c.store.Rules(), action) {
			return OutcomeDeclined
		}
		if !c.toggle(action) {
			return OutcomeDeclined
		}
		return OutcomeApplied
	}

	return OutcomeIgnored
}

func (c *Controller) toggle(action core.Action) bool {
	switch action {
	case core.ActionReverseTime:
		return c.store.ReverseTime()
	case core.ActionSwitchReality:
		return c.store.SwitchReality()
	default:
		return c.store.FlipGravity()
	}
}

// movement returns the store delta for a direction key. The magnitude depends
// on reality and the sign follows the time direction.
func (c *Controller) movement(st state.State, action core.Action) (dx, dy float64) {
	step := c.normalStep
	if st.IsQuantum() {
		step = c.quantumStep
	}
	step *= st.Time.Sign()

	switch action {
	case core.ActionUp:
		return 0, step
	case core.ActionDown:
		return 0, -step
	case core.ActionLeft:
		return -step, 0
	case core.ActionRight:
		return step, 0
	}
	return 0, 0
}
