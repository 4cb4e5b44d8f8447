package state

// Rules are the numeric constants of the guarded transitions.
type Rules struct {
	RealityCost     int     // Energy to switch reality
	TimeCost        int     // Energy to reverse time
	GravityCost     int     // Energy to flip gravity
	MaxEnergy       int     // Starting and maximum energy
	SolveReward     int     // Energy regained per solved puzzle
	PointsPerPuzzle int     // Score gained per solved puzzle
	AnswerTolerance float64 // Max |answer - expected| counted as correct
}

// DefaultRules returns the standard game rules.
func DefaultRules() Rules {
	return Rules{
		RealityCost:     10,
		TimeCost:        15,
		GravityCost:     5,
		MaxEnergy:       100,
		SolveReward:     20,
		PointsPerPuzzle: 100,
		AnswerTolerance: 0.001,
	}
}
