// Package state holds the game-state store: a single record of reality, energy,
// position, gravity, time direction, score and the active puzzle, mutated only
// through guarded actions.
package state

import (
	"math"

	"github.com/vovakirdan/quantum-shift/internal/puzzle"
)

// Store owns one game's state. Each action validates its precondition and
// then replaces the whole record at once; a failed precondition leaves the
// record untouched and reports false.
//
// A Store belongs to a single update loop and is not safe for concurrent use.
type Store struct {
	state    State
	stats    Stats
	rules    Rules
	gen      *puzzle.Generator
	notifier Notifier
}

// Option configures a Store.
type Option func(*Store)

// WithRules overrides the default rules.
func WithRules(r Rules) Option {
	return func(s *Store) {
		s.rules = r
	}
}

// WithNotifier sets the audio collaborator.
func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

// New creates a store in the initial state. The store has no puzzle until
// GenerateNewPuzzle or SetPuzzle is called.
func New(gen *puzzle.Generator, opts ...Option) *Store {
	s := &Store{
		rules:    DefaultRules(),
		gen:      gen,
		notifier: NopNotifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = Initial(s.rules)
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	return s.state
}

// Rules returns the rules the store enforces.
func (s *Store) Rules() Rules {
	return s.rules
}

// Stats returns the counters of the current run.
func (s *Store) Stats() Stats {
	return s.stats
}

// commit swaps in the next state.
func (s *Store) commit(next State) {
	s.state = next
}

// toggle spends cost energy and applies flip. It is the shared shape of the
// three energy-gated toggles.
func (s *Store) toggle(cost int, flip func(*State)) bool {
	if s.state.Energy < cost {
		s.stats.DeclinedToggle++
		return false
	}
	next := s.state
	next.Energy -= cost
	flip(&next)
	s.commit(next)
	return true
}

// SwitchReality toggles Normal/Quantum for RealityCost energy.
func (s *Store) SwitchReality() bool {
	ok := s.toggle(s.rules.RealityCost, func(st *State) {
		st.Reality = st.Reality.Toggle()
	})
	if ok {
		s.stats.RealityShifts++
		s.notifier.PlaySound(SoundRealityShift)
		s.notifier.SwitchBackgroundMusic(s.state.Reality)
	}
	return ok
}

// ReverseTime toggles the time direction for TimeCost energy.
func (s *Store) ReverseTime() bool {
	ok := s.toggle(s.rules.TimeCost, func(st *State) {
		st.Time = -st.Time
	})
	if ok {
		s.stats.TimeReversals++
		s.notifier.PlaySound(SoundTimeReverse)
	}
	return ok
}

// FlipGravity toggles the gravity direction for GravityCost energy.
func (s *Store) FlipGravity() bool {
	ok := s.toggle(s.rules.GravityCost, func(st *State) {
		st.Gravity = -st.Gravity
	})
	if ok {
		s.stats.GravityFlips++
	}
	return ok
}

// MovePlayer moves by dx horizontally and dy scaled by the gravity direction
// vertically. Position is unbounded.
func (s *Store) MovePlayer(dx, dy float64) {
	next := s.state
	next.Position = Vec2{
		X: next.Position.X + dx,
		Y: next.Position.Y + dy*next.Gravity.Sign(),
	}
	s.commit(next)
}

// GenerateNewPuzzle replaces the active puzzle with one for the current
// reality and score.
func (s *Store) GenerateNewPuzzle() {
	next := s.state
	p := s.gen.Generate(next.IsQuantum(), next.Score)
	next.Puzzle = &p
	s.commit(next)
}

// SolvePuzzle checks answer against the active puzzle. A correct answer adds
// PointsPerPuzzle, regains SolveReward energy (capped at MaxEnergy) and poses a
// new puzzle for the updated score. A wrong answer or a missing puzzle changes
// nothing.
func (s *Store) SolvePuzzle(answer float64) bool {
	cur := s.state.Puzzle
	if cur == nil {
		return false
	}
	if math.IsNaN(answer) || math.Abs(answer-cur.Answer) >= s.rules.AnswerTolerance {
		s.stats.WrongAnswers++
		return false
	}

	next := s.state
	next.Score += s.rules.PointsPerPuzzle
	next.Energy = min(s.rules.MaxEnergy, next.Energy+s.rules.SolveReward)
	p := s.gen.Generate(next.IsQuantum(), next.Score)
	next.Puzzle = &p
	s.commit(next)

	s.stats.PuzzlesSolved++
	s.notifier.PlaySound(SoundPuzzleSolved)
	return true
}

// UseEnergy spends amount energy if available. Negative amounts are refused
// so energy can never exceed its bound through this path.
func (s *Store) UseEnergy(amount int) bool {
	if amount < 0 || s.state.Energy < amount {
		return false
	}
	next := s.state
	next.Energy -= amount
	s.commit(next)
	return true
}

// ResetGame restores the canonical initial state and clears the puzzle and
// run counters.
func (s *Store) ResetGame() {
	prev := s.state.Reality
	s.commit(Initial(s.rules))
	s.stats = Stats{}
	if prev != s.state.Reality {
		s.notifier.SwitchBackgroundMusic(s.state.Reality)
	}
}

// SetPuzzle installs an explicit, unsolved puzzle.
func (s *Store) SetPuzzle(question string, answer float64) {
	next := s.state
	p := puzzle.Custom(question, answer)
	next.Puzzle = &p
	s.commit(next)
}
