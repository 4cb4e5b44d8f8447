package game

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/quantum-shift/internal/core"
	"github.com/vovakirdan/quantum-shift/internal/interaction"
	"github.com/vovakirdan/quantum-shift/internal/physics"
	"github.com/vovakirdan/quantum-shift/internal/state"
)

// Minimum screen size for the full layout.
const (
	MinWidth  = 40
	MinHeight = 16
)

// Layout rows.
const (
	hudRows    = 4
	footerRows = 3
	barWidth   = 20
)

// Visual characters for rendering
const (
	PlayerChar        = '●'
	PlayerQuantumChar = '◉'
	UprightMarker     = '▴'
	InvertedMarker    = '▾'
	TrailChar         = '·'
	StarChar          = '.'
	StarBrightChar    = '*'
)

// InputView carries the platform's answer field and overlays into Render.
type InputView struct {
	Focused bool     // Answer field has focus
	Text    string   // Raw typed answer
	Overlay []string // Panel lines drawn in the arena's lower right corner
}

// Render draws the session to the screen.
func (g *Game) Render(dst *core.Screen, in InputView) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	if w < MinWidth || h < MinHeight {
		dst.DrawTextCentered(h/2, "Terminal too small", core.ColorYellow)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("need %dx%d", MinWidth, MinHeight), core.ColorGray)
		return
	}

	st := g.store.Snapshot()
	accent := accentColor(st)

	g.drawHUD(dst, st, accent)

	arena := core.NewRect(0, hudRows, w, h-hudRows-footerRows)
	dst.DrawBox(arena, accent)
	inner := core.NewRect(arena.X+1, arena.Y+1, arena.W-2, arena.H-2)

	if st.IsQuantum() {
		g.drawStars(dst, inner)
	}
	g.drawPlayer(dst, st, inner)
	drawQuestion(dst, st, inner)
	g.drawFooter(dst, st, in)

	if len(in.Overlay) > 0 {
		drawOverlay(dst, inner, in.Overlay)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func accentColor(st state.State) core.Color {
	if st.IsQuantum() {
		return core.ColorBrightMagenta
	}
	return core.ColorBrightCyan
}

func (g *Game) drawHUD(dst *core.Screen, st state.State, accent core.Color) {
	w := dst.Width()
	rules := g.store.Rules()

	reality := "Reality: Normal"
	if st.IsQuantum() {
		reality = "Reality: Quantum"
	}
	dst.DrawTextColored(1, 0, reality, accent)

	score := "Score: " + interaction.DisplayScore(st)
	dst.DrawTextColored(w-utf8.RuneCountInString(score)-1, 0, score, accent)

	dst.DrawTextColored(1, 1, g.energyBar(st, rules), g.energyColor(st, rules))

	timeText := "Time: forward ▶"
	if st.IsReversed() {
		timeText = "Time: reversed ◀"
	}
	dst.DrawTextColored(1, 2, timeText, core.ColorWhite)

	gravity := "Gravity: up ↑"
	if st.Gravity == state.GravityDown {
		gravity = "Gravity: down ↓"
	}
	dst.DrawTextColored(22, 2, gravity, core.ColorWhite)

	if hint := EnergyHint(st, rules); hint != "" {
		dst.DrawTextColored(1, 3, hint, core.ColorRed)
	}
}

func (g *Game) energyBar(st state.State, rules state.Rules) string {
	filled := 0
	if rules.MaxEnergy > 0 {
		filled = core.Clamp(st.Energy*barWidth/rules.MaxEnergy, 0, barWidth)
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	text := fmt.Sprintf("Energy %s %d/%d", bar, st.Energy, rules.MaxEnergy)
	if g.LowEnergy() {
		text += "  LOW ENERGY"
	}
	return text
}

func (g *Game) energyColor(st state.State, rules state.Rules) core.Color {
	switch {
	case g.LowEnergy():
		return core.ColorRed
	case st.Energy*2 < rules.MaxEnergy:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// LowEnergy reports whether energy is below the warning threshold.
func (g *Game) LowEnergy() bool {
	return g.store.Snapshot().Energy < g.cfg.Display.LowEnergy
}

// EnergyHint explains which toggles are out of reach, or returns "".
func EnergyHint(st state.State, rules state.Rules) string {
	var parts []string
	if st.Energy < rules.RealityCost {
		parts = append(parts, fmt.Sprintf("Need %d more energy to shift reality", rules.RealityCost-st.Energy))
	}
	if st.Energy < rules.TimeCost {
		parts = append(parts, fmt.Sprintf("Need %d more energy to reverse time", rules.TimeCost-st.Energy))
	}
	return strings.Join(parts, " · ")
}

func drawQuestion(dst *core.Screen, st state.State, inner core.Rect) {
	q := interaction.DisplayQuestion(st)
	if q == "" {
		return
	}
	c := core.ColorWhite
	if st.IsQuantum() {
		c = core.ColorBrightMagenta
	}
	x := inner.X + (inner.W-utf8.RuneCountInString(q))/2
	dst.DrawTextColored(max(x, inner.X), inner.Y, q, c)
}

func (g *Game) drawStars(dst *core.Screen, inner core.Rect) {
	for _, s := range g.stars {
		x := inner.X + int(s.X*float64(inner.W))
		y := inner.Y + int(s.Y*float64(inner.H))
		r := StarChar
		if (int(g.ticks/8)+s.Phase)%6 == 0 {
			r = StarBrightChar
		}
		dst.SetColored(x, y, r, core.ColorGray)
	}
}

// camera maps world coordinates into the arena. The view pages when the
// player leaves it so the sphere stays on screen.
type camera struct {
	inner  core.Rect
	cx, cy int
	ox, oy float64
}

func newCamera(inner core.Rect, focus physics.Vec3) camera {
	cx, cy := inner.Center()
	halfX := float64(inner.W) / 4 // Two columns per world unit
	halfY := float64(inner.H) / 2
	return camera{
		inner: inner,
		cx:    cx,
		cy:    cy,
		ox:    page(focus.X, halfX),
		oy:    page(focus.Y, halfY),
	}
}

func page(v, half float64) float64 {
	if half <= 0 {
		return 0
	}
	span := 2 * half
	return math.Floor((v+half)/span) * span
}

func (c camera) project(p physics.Vec3) (int, int, bool) {
	x := c.cx + core.CellIndex((p.X-c.ox)*2)
	y := c.cy - core.CellIndex(p.Y-c.oy)
	return x, y, c.inner.Contains(x, y)
}

func (g *Game) drawPlayer(dst *core.Screen, st state.State, inner core.Rect) {
	cam := newCamera(inner, g.view.Position)

	for _, p := range g.view.Trail {
		if x, y, ok := cam.project(p); ok {
			dst.SetColored(x, y, TrailChar, core.ColorMagenta)
		}
	}

	x, y, ok := cam.project(g.view.Position)
	if !ok {
		return
	}

	glyph, c := PlayerChar, core.ColorBrightGreen
	if st.IsQuantum() || g.view.Scale > 1.1 {
		glyph, c = PlayerQuantumChar, core.ColorBrightMagenta
	}
	dst.SetColored(x, y, glyph, c)

	if g.view.UpsideDown() {
		if inner.Contains(x, y+1) {
			dst.SetColored(x, y+1, InvertedMarker, core.ColorGray)
		}
	} else if inner.Contains(x, y-1) {
		dst.SetColored(x, y-1, UprightMarker, core.ColorGray)
	}
}

func (g *Game) drawFooter(dst *core.Screen, st state.State, in InputView) {
	w, h := dst.Width(), dst.Height()

	if g.feedback != "" {
		dst.DrawTextCentered(h-3, g.feedback, g.feedbackColor)
	}

	if in.Focused {
		answer := "Answer: " + interaction.DisplayInput(st, in.Text) + "_"
		dst.DrawTextCentered(h-2, answer, accentColor(st))
	} else {
		dst.DrawTextCentered(h-2, "Press Enter to answer", core.ColorGray)
	}

	pos := fmt.Sprintf("Pos (%.1f, %.1f)", st.Position.X, st.Position.Y)
	dst.DrawTextColored(1, h-1, pos, core.ColorGray)

	clock := fmt.Sprintf("%ds", int(g.elapsed))
	dst.DrawTextColored(w-len(clock)-1, h-1, clock, core.ColorGray)
}

func drawOverlay(dst *core.Screen, inner core.Rect, lines []string) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 2

	box := core.NewRect(inner.Right()-boxW, inner.Bottom()-boxH, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorGray)
	for i, l := range lines {
		dst.DrawTextColored(box.X+2, box.Y+1+i, l, core.ColorWhite)
	}
}

func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(box.Y+1, title, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}
