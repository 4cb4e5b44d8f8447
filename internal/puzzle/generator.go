package puzzle

import (
	"fmt"
	"math/rand"
)

// operandRange bounds the numbers drawn for one tier.
type operandRange struct {
	aMin, aMax int
	bMin, bMax int
}

var normalRanges = map[Difficulty]operandRange{
	Easy:   {aMin: 1, aMax: 20, bMin: 1, bMax: 20},
	Medium: {aMin: 10, aMax: 50, bMin: 2, bMax: 12},
	Hard:   {aMin: 20, aMax: 100, bMin: 2, bMax: 20},
}

var quantumRanges = map[Difficulty]operandRange{
	Easy:   {aMin: 2, aMax: 10},
	Medium: {aMin: 5, aMax: 15},
	Hard:   {aMin: 3, aMax: 8},
}

// Generator produces puzzles from a seeded random source.
// Not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewGeneratorFrom wraps an existing random source.
func NewGeneratorFrom(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate returns a puzzle for the reality mode and score. The tier always
// comes from DifficultyForScore, so an error here is a programming error.
func (g *Generator) Generate(isQuantum bool, score int) Puzzle {
	p, err := g.GenerateFor(isQuantum, DifficultyForScore(score))
	if err != nil {
		panic(fmt.Sprintf("puzzle: generate for score %d: %v", score, err))
	}
	return p
}

// GenerateFor returns a puzzle for an explicit tier.
func (g *Generator) GenerateFor(isQuantum bool, d Difficulty) (Puzzle, error) {
	if !d.Valid() {
		return Puzzle{}, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
	if isQuantum {
		return g.quantum(d)
	}
	return g.normal(d)
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// pick selects from the prefix of pool unlocked by the tier:
// easy two operators, medium three, hard all four.
func (g *Generator) pick(pool []Operator, d Difficulty) Operator {
	n := int(d) + 2
	return pool[g.rng.Intn(n)]
}

func (g *Generator) normal(d Difficulty) (Puzzle, error) {
	r := normalRanges[d]
	a := g.between(r.aMin, r.aMax)
	b := g.between(r.bMin, r.bMax)
	op := g.pick(normalPool, d)

	if op == OpDiv {
		// Built backwards so the quotient is a whole number: b is the quotient,
		// the multiplier becomes the divisor.
		quotient := b
		divisor := g.between(1, 10)
		a, b = quotient*divisor, divisor
	}

	answer, err := Evaluate(op, a, b)
	if err != nil {
		return Puzzle{}, err
	}

	return Puzzle{
		Question:   fmt.Sprintf("Solve: %d %s %d", a, op.Symbol(), b),
		Answer:     answer,
		Difficulty: d,
		Operator:   op,
		Operands:   []int{a, b},
	}, nil
}

func (g *Generator) quantum(d Difficulty) (Puzzle, error) {
	r := quantumRanges[d]
	n := g.between(r.aMin, r.aMax)
	op := g.pick(quantumPool, d)

	question, err := quantumQuestion(op, n)
	if err != nil {
		return Puzzle{}, err
	}
	answer, err := Evaluate(op, n)
	if err != nil {
		return Puzzle{}, err
	}

	return Puzzle{
		Question:   question,
		Answer:     answer,
		Difficulty: d,
		Operator:   op,
		Operands:   []int{n},
	}, nil
}

func quantumQuestion(op Operator, n int) (string, error) {
	switch op {
	case OpSqrt:
		return fmt.Sprintf("Find x: x² = %d", n*n), nil
	case OpSquare:
		return fmt.Sprintf("Calculate: %d²", n), nil
	case OpLog2:
		return fmt.Sprintf("Solve for x: 2^x = %d", 1<<n), nil
	case OpFactorial:
		return fmt.Sprintf("Calculate: %d!", n), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownOperator, int(op))
	}
}
