// Package game ties one play session together: the state store, the
// interaction controller, the audio notifier and the per-frame player view.
// The platform layer feeds it actions and ticks and asks it to render.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/quantum-shift/internal/config"
	"github.com/vovakirdan/quantum-shift/internal/core"
	"github.com/vovakirdan/quantum-shift/internal/interaction"
	"github.com/vovakirdan/quantum-shift/internal/puzzle"
	"github.com/vovakirdan/quantum-shift/internal/state"
)

// Messages shown in the feedback line besides the answer results.
const (
	MsgNoEnergy = "Not enough energy"
	MsgReset    = "Reset"
)

// starCount is the size of the quantum star field.
const starCount = 48

// Game is one play session. It is driven from a single goroutine.
type Game struct {
	cfg      config.Config
	runtime  core.RuntimeConfig
	notifier state.Notifier

	rng   *rand.Rand
	store *state.Store
	ctrl  *interaction.Controller
	view  View
	stars []star

	feedback      string
	feedbackColor core.Color
	feedbackLeft  float64 // Seconds until the feedback line clears

	paused  bool
	ticks   uint64
	elapsed float64
}

type star struct {
	X, Y  float64 // Fractions of the arena
	Phase int
}

// New creates a game. A nil notifier plays nothing.
func New(cfg config.Config, notifier state.Notifier) *Game {
	if notifier == nil {
		notifier = state.NopNotifier{}
	}
	return &Game{cfg: cfg, notifier: notifier}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "quantum"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Quantum Shift"
}

// Reset starts a fresh session with a new store.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))

	g.store = state.New(
		puzzle.NewGenerator(rc.Seed),
		state.WithRules(g.cfg.StateRules()),
		state.WithNotifier(g.notifier),
	)
	g.ctrl = interaction.NewController(g.store)
	g.ctrl.SetStepSizes(g.cfg.Movement.NormalStep, g.cfg.Movement.QuantumStep)

	g.view = NewView()
	g.stars = make([]star, starCount)
	for i := range g.stars {
		g.stars[i] = star{X: g.rng.Float64(), Y: g.rng.Float64(), Phase: g.rng.Intn(60)}
	}

	g.clearFeedback()
	g.paused = false
	g.ticks = 0
	g.elapsed = 0

	g.notifier.SwitchBackgroundMusic(state.RealityNormal)
}

// Resize updates the screen dimensions without restarting the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// HandleAction applies a player action. While the answer field has focus
// every action is suppressed.
func (g *Game) HandleAction(a core.Action, inputFocused bool) interaction.Outcome {
	if inputFocused {
		return interaction.OutcomeIgnored
	}

	if a == core.ActionPause {
		g.paused = !g.paused
		return interaction.OutcomeApplied
	}
	if g.paused && a != core.ActionReset {
		return interaction.OutcomeIgnored
	}

	out := g.ctrl.Apply(a, false)
	switch {
	case out == interaction.OutcomeDeclined:
		g.setFeedback(MsgNoEnergy, core.ColorRed)
	case out == interaction.OutcomeApplied && a == core.ActionReset:
		g.view = NewView()
		g.paused = false
		g.elapsed = 0
		g.setFeedback(MsgReset, core.ColorGray)
	}
	return out
}

// Submit hands the typed answer to the controller and shows the result.
// Answers are ignored while paused.
func (g *Game) Submit(text string) interaction.Feedback {
	if g.paused {
		return interaction.FeedbackNone
	}
	fb := g.ctrl.Submit(text)
	switch fb {
	case interaction.FeedbackCorrect:
		g.setFeedback(fb.String(), core.ColorBrightGreen)
	case interaction.FeedbackIncorrect:
		g.setFeedback(fb.String(), core.ColorRed)
	case interaction.FeedbackInvalid:
		g.setFeedback(fb.String(), core.ColorYellow)
	}
	return fb
}

// Step advances the session by dt seconds.
func (g *Game) Step(dt float64) core.StepResult {
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.elapsed += dt

	if g.store.Snapshot().Puzzle == nil {
		g.store.GenerateNewPuzzle()
	}

	g.view = Advance(g.view, g.frameInput(), dt)

	if g.feedbackLeft > 0 {
		g.feedbackLeft -= dt
		if g.feedbackLeft <= 0 {
			g.clearFeedback()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) frameInput() FrameInput {
	p := g.cfg.Physics
	return FrameInput{
		State:        g.store.Snapshot(),
		Params:       g.cfg.PhysicsParams(),
		Lerp:         p.Lerp,
		TrailLength:  p.TrailLength,
		QuantumScale: p.QuantumScale,
		Noise:        g.rng,
	}
}

func (g *Game) setFeedback(msg string, c core.Color) {
	g.feedback = msg
	g.feedbackColor = c
	g.feedbackLeft = g.cfg.Display.FeedbackSeconds
}

func (g *Game) clearFeedback() {
	g.feedback = ""
	g.feedbackColor = core.ColorDefault
	g.feedbackLeft = 0
}

// Feedback returns the message currently shown, or "".
func (g *Game) Feedback() string {
	return g.feedback
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	st := g.store.Snapshot()
	return core.GameState{
		Score:  st.Score,
		Energy: st.Energy,
		Paused: g.paused,
	}
}

// Store returns the session's state store.
func (g *Game) Store() *state.Store {
	return g.store
}

// View returns the current player view.
func (g *Game) View() View {
	return g.view
}

// Elapsed returns the time played since the last reset.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.elapsed * float64(time.Second))
}

// Paused reports whether the session is paused.
func (g *Game) Paused() bool {
	return g.paused
}
