package state

import "github.com/vovakirdan/quantum-shift/internal/puzzle"

// Reality is one of the two mutually exclusive game modes.
type Reality int

const (
	RealityNormal Reality = iota
	RealityQuantum
)

func (r Reality) String() string {
	if r == RealityQuantum {
		return "quantum"
	}
	return "normal"
}

// Toggle returns the other reality.
func (r Reality) Toggle() Reality {
	if r == RealityQuantum {
		return RealityNormal
	}
	return RealityQuantum
}

// TimeDirection is +1 forward or -1 reversed.
type TimeDirection int

const (
	TimeForward  TimeDirection = 1
	TimeReversed TimeDirection = -1
)

func (t TimeDirection) String() string {
	if t == TimeReversed {
		return "reversed"
	}
	return "forward"
}

// Sign returns the direction as a float multiplier.
func (t TimeDirection) Sign() float64 {
	return float64(t)
}

// GravityDirection is +1 up or -1 down.
type GravityDirection int

const (
	GravityUp   GravityDirection = 1
	GravityDown GravityDirection = -1
)

func (g GravityDirection) String() string {
	if g == GravityDown {
		return "down"
	}
	return "up"
}

// Sign returns the direction as a float multiplier.
func (g GravityDirection) Sign() float64 {
	return float64(g)
}

// Vec2 is the logical player position.
type Vec2 struct {
	X, Y float64
}

// State is a snapshot of the whole game record.
type State struct {
	Reality  Reality
	Energy   int
	Position Vec2
	Gravity  GravityDirection
	Time     TimeDirection
	Score    int
	// Puzzle is nil when no puzzle is active. The pointed-to value is never
	// mutated; actions swap in a new pointer.
	Puzzle *puzzle.Puzzle
}

// IsQuantum reports whether the quantum reality is active.
func (s State) IsQuantum() bool {
	return s.Reality == RealityQuantum
}

// IsReversed reports whether time runs backwards.
func (s State) IsReversed() bool {
	return s.Time == TimeReversed
}

// Initial returns the canonical starting state for the given rules.
func Initial(rules Rules) State {
	return State{
		Reality:  RealityNormal,
		Energy:   rules.MaxEnergy,
		Position: Vec2{},
		Gravity:  GravityUp,
		Time:     TimeForward,
		Score:    0,
		Puzzle:   nil,
	}
}

// Stats counts what happened during a run.
type Stats struct {
	PuzzlesSolved  int
	WrongAnswers   int
	RealityShifts  int
	TimeReversals  int
	GravityFlips   int
	DeclinedToggle int
}
