package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyForScore(t *testing.T) {
	tests := []struct {
		score int
		want  Difficulty
	}{
		{0, Easy},
		{299, Easy},
		{300, Medium},
		{699, Medium},
		{700, Hard},
		{5000, Hard},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DifficultyForScore(tc.score), "score %d", tc.score)
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		got, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	_, err := ParseDifficulty("nightmare")
	require.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestGenerateTierBoundaries(t *testing.T) {
	g := NewGenerator(1)
	for _, quantum := range []bool{false, true} {
		assert.Equal(t, Easy, g.Generate(quantum, 299).Difficulty)
		assert.Equal(t, Medium, g.Generate(quantum, 300).Difficulty)
		assert.Equal(t, Medium, g.Generate(quantum, 699).Difficulty)
		assert.Equal(t, Hard, g.Generate(quantum, 700).Difficulty)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewGenerator(42)
	b := NewGenerator(42)
	for i := 0; i < 50; i++ {
		quantum := i%2 == 0
		pa := a.Generate(quantum, i*20)
		pb := b.Generate(quantum, i*20)
		require.Equal(t, pa, pb, "iteration %d", i)
	}
}

func TestNormalOperatorPoolWidens(t *testing.T) {
	allowed := map[Difficulty]map[Operator]bool{
		Easy:   {OpAdd: true, OpSub: true},
		Medium: {OpAdd: true, OpSub: true, OpMul: true},
		Hard:   {OpAdd: true, OpSub: true, OpMul: true, OpDiv: true},
	}

	g := NewGenerator(7)
	for d, ops := range allowed {
		seen := map[Operator]bool{}
		for i := 0; i < 400; i++ {
			p, err := g.GenerateFor(false, d)
			require.NoError(t, err)
			require.True(t, ops[p.Operator], "%s puzzle used %s", d, p.Operator.Symbol())
			require.False(t, p.Operator.IsQuantum())
			seen[p.Operator] = true
		}
		assert.Len(t, seen, len(ops), "%s should eventually use every operator in its pool", d)
	}
}

func TestQuantumOperatorPoolWidens(t *testing.T) {
	allowed := map[Difficulty]map[Operator]bool{
		Easy:   {OpSqrt: true, OpSquare: true},
		Medium: {OpSqrt: true, OpSquare: true, OpLog2: true},
		Hard:   {OpSqrt: true, OpSquare: true, OpLog2: true, OpFactorial: true},
	}

	g := NewGenerator(11)
	for d, ops := range allowed {
		seen := map[Operator]bool{}
		for i := 0; i < 400; i++ {
			p, err := g.GenerateFor(true, d)
			require.NoError(t, err)
			require.True(t, ops[p.Operator], "%s puzzle used %s", d, p.Operator.Symbol())
			seen[p.Operator] = true
		}
		assert.Len(t, seen, len(ops))
	}
}

func TestDivisionAlwaysWhole(t *testing.T) {
	g := NewGenerator(3)
	found := 0
	for i := 0; i < 2000; i++ {
		p, err := g.GenerateFor(false, Hard)
		require.NoError(t, err)
		if p.Operator != OpDiv {
			continue
		}
		found++
		dividend, divisor := p.Operands[0], p.Operands[1]
		require.NotZero(t, divisor)
		assert.Zero(t, dividend%divisor, "%s", p.Question)
		assert.Equal(t, float64(dividend/divisor), p.Answer, "%s", p.Question)
	}
	assert.Positive(t, found, "expected at least one division puzzle")
}

func TestAnswersMatchOperands(t *testing.T) {
	g := NewGenerator(99)
	for i := 0; i < 500; i++ {
		p := g.Generate(i%2 == 1, (i%10)*100)
		want, err := Evaluate(p.Operator, p.Operands...)
		require.NoError(t, err)
		assert.Equal(t, want, p.Answer, "%s", p.Question)
		assert.False(t, p.Solved)
		assert.NotEmpty(t, p.Question)
	}
}

func TestOperandRanges(t *testing.T) {
	g := NewGenerator(5)
	for i := 0; i < 500; i++ {
		p, err := g.GenerateFor(true, Hard)
		require.NoError(t, err)
		n := p.Operands[0]
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 8)

		p, err = g.GenerateFor(false, Easy)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.Operands[0], 1)
		assert.LessOrEqual(t, p.Operands[0], 20)
	}
}

func TestFactorial(t *testing.T) {
	want := []int{1, 1, 2, 6, 24, 120, 720, 5040, 40320}
	for n, w := range want {
		assert.Equal(t, w, Factorial(n), "%d!", n)
	}
}

func TestQuantumQuestions(t *testing.T) {
	tests := []struct {
		op       Operator
		n        int
		question string
		answer   float64
	}{
		{OpSqrt, 7, "Find x: x² = 49", 7},
		{OpSquare, 9, "Calculate: 9²", 81},
		{OpLog2, 5, "Solve for x: 2^x = 32", 5},
		{OpFactorial, 5, "Calculate: 5!", 120},
	}
	for _, tc := range tests {
		q, err := quantumQuestion(tc.op, tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.question, q)

		answer, err := Evaluate(tc.op, tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.answer, answer)
	}
}

func TestUnknownEnumsFail(t *testing.T) {
	g := NewGenerator(1)

	_, err := g.GenerateFor(false, Difficulty(9))
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
	_, err = g.GenerateFor(true, Difficulty(-1))
	assert.ErrorIs(t, err, ErrUnknownDifficulty)

	_, err = Evaluate(Operator(42), 1, 2)
	assert.ErrorIs(t, err, ErrUnknownOperator)
	_, err = quantumQuestion(OpAdd, 3)
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestEvaluateGuards(t *testing.T) {
	_, err := Evaluate(OpAdd, 1)
	assert.Error(t, err)

	_, err = Evaluate(OpDiv, 4, 0)
	assert.Error(t, err)

	v, err := Evaluate(OpDiv, 12, 4)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}
