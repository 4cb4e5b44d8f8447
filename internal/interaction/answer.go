package interaction

import (
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/quantum-shift/internal/state"
)

// Feedback is the result of an answer submission.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
	FeedbackInvalid // Input did not parse as a number
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "Correct!"
	case FeedbackIncorrect:
		return "Try again"
	case FeedbackInvalid:
		return "Enter a number"
	default:
		return ""
	}
}

// Submit parses text as an answer and hands it to the store. In reversed time
// the player types the answer mirrored, so the digits are reversed back first.
func (c *Controller) Submit(text string) Feedback {
	text = strings.TrimSpace(text)
	if c.store.Snapshot().IsReversed() {
		text = ReverseDigits(text)
	}

	answer, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(answer) || math.IsInf(answer, 0) {
		return FeedbackInvalid
	}
	if c.store.SolvePuzzle(answer) {
		return FeedbackCorrect
	}
	return FeedbackIncorrect
}

// Mirror reverses s rune by rune.
func Mirror(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ReverseDigits mirrors a number's text while keeping a leading sign in front,
// so "-12" becomes "-21".
func ReverseDigits(s string) string {
	if s == "" {
		return s
	}
	if s[0] == '-' || s[0] == '+' {
		return s[:1] + Mirror(s[1:])
	}
	return Mirror(s)
}

// display mirrors text in reversed time.
func display(st state.State, text string) string {
	if st.IsReversed() {
		return Mirror(text)
	}
	return text
}

// DisplayQuestion returns the question as shown to the player, or "" when no
// puzzle is active.
func DisplayQuestion(st state.State) string {
	if st.Puzzle == nil {
		return ""
	}
	return display(st, st.Puzzle.Question)
}

// DisplayScore returns the score as shown to the player.
func DisplayScore(st state.State) string {
	return display(st, strconv.Itoa(st.Score))
}

// DisplayInput returns the typed answer as shown to the player.
func DisplayInput(st state.State, input string) string {
	return display(st, input)
}
