// Package puzzle generates the arithmetic and "quantum" math puzzles posed to
// the player. Generation is a pure function of the difficulty tier, the reality
// mode and the random source.
package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDifficulty is returned for a Difficulty outside the closed set.
	ErrUnknownDifficulty = errors.New("puzzle: unknown difficulty")
	// ErrUnknownOperator is returned for an Operator outside the closed set.
	ErrUnknownOperator = errors.New("puzzle: unknown operator")
)

// Score thresholds for difficulty tiers.
const (
	MediumScore = 300
	HardScore   = 700
)

// Difficulty is a puzzle tier derived from the current score.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DifficultyForScore maps a score to its tier: <300 easy, <700 medium, else hard.
func DifficultyForScore(score int) Difficulty {
	switch {
	case score < MediumScore:
		return Easy
	case score < HardScore:
		return Medium
	default:
		return Hard
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty returns the tier named s ("easy", "medium" or "hard").
func ParseDifficulty(s string) (Difficulty, error) {
	for d := Easy; d <= Hard; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Valid reports whether d is one of the defined tiers.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// Operator is the operation a puzzle asks about.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv

	OpSqrt
	OpSquare
	OpLog2
	OpFactorial
)

// normalPool and quantumPool are ordered so that each tier takes a prefix.
var (
	normalPool  = []Operator{OpAdd, OpSub, OpMul, OpDiv}
	quantumPool = []Operator{OpSqrt, OpSquare, OpLog2, OpFactorial}
)

// Symbol returns the operator's glyph as shown in questions.
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	case OpSqrt:
		return "√"
	case OpSquare:
		return "²"
	case OpLog2:
		return "log₂"
	case OpFactorial:
		return "!"
	default:
		return "?"
	}
}

// IsQuantum reports whether the operator belongs to the quantum reality pool.
func (op Operator) IsQuantum() bool {
	return op >= OpSqrt && op <= OpFactorial
}

// Puzzle is an immutable question/answer pair. A solved puzzle is replaced,
// never mutated.
type Puzzle struct {
	Question   string
	Answer     float64
	Solved     bool
	Difficulty Difficulty
	Operator   Operator
	// Operands holds the numbers shown in the question. Binary puzzles carry two,
	// quantum puzzles one.
	Operands []int
}

// Custom builds a puzzle from an explicit question and answer.
func Custom(question string, answer float64) Puzzle {
	return Puzzle{Question: question, Answer: answer}
}

// Factorial computes n! iteratively. Negative n yields 1.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Evaluate computes the closed-form answer of op over the given operands.
// Binary operators read two operands, quantum operators one.
func Evaluate(op Operator, operands ...int) (float64, error) {
	need := 2
	if op.IsQuantum() {
		need = 1
	}
	if len(operands) < need {
		return 0, errors.New("puzzle: not enough operands")
	}

	switch op {
	case OpAdd:
		return float64(operands[0] + operands[1]), nil
	case OpSub:
		return float64(operands[0] - operands[1]), nil
	case OpMul:
		return float64(operands[0] * operands[1]), nil
	case OpDiv:
		if operands[1] == 0 {
			return 0, errors.New("puzzle: division by zero")
		}
		return float64(operands[0]) / float64(operands[1]), nil
	case OpSqrt, OpLog2:
		// Both are posed backwards: x² = n² and 2^x = 2ⁿ both solve to n.
		return float64(operands[0]), nil
	case OpSquare:
		return float64(operands[0] * operands[0]), nil
	case OpFactorial:
		return float64(Factorial(operands[0])), nil
	default:
		return 0, ErrUnknownOperator
	}
}
