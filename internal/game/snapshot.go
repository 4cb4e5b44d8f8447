package game

import (
	"github.com/vovakirdan/quantum-shift/internal/interaction"
)

// Snapshot contains the session state for screenshots and score records.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Reality  string
	Energy   int
	X, Y     float64
	Gravity  string
	Time     string
	Score    int
	Question string // As shown to the player
	Answer   float64
	Paused   bool
	Feedback string

	PuzzlesSolved int
	WrongAnswers  int
	RealityShifts int
	TimeReversals int
	GravityFlips  int
}

// Snapshot returns the current session state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.store.Snapshot()
	stats := g.store.Stats()

	snap := Snapshot{
		Tick:     g.ticks,
		Reality:  st.Reality.String(),
		Energy:   st.Energy,
		X:        st.Position.X,
		Y:        st.Position.Y,
		Gravity:  st.Gravity.String(),
		Time:     st.Time.String(),
		Score:    st.Score,
		Question: interaction.DisplayQuestion(st),
		Paused:   g.paused,
		Feedback: g.feedback,

		PuzzlesSolved: stats.PuzzlesSolved,
		WrongAnswers:  stats.WrongAnswers,
		RealityShifts: stats.RealityShifts,
		TimeReversals: stats.TimeReversals,
		GravityFlips:  stats.GravityFlips,
	}
	if st.Puzzle != nil {
		snap.Answer = st.Puzzle.Answer
	}
	return snap
}
