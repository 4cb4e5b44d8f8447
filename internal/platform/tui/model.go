package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quantum-shift/internal/core"
	"github.com/vovakirdan/quantum-shift/internal/game"
	"github.com/vovakirdan/quantum-shift/internal/interaction"
	"github.com/vovakirdan/quantum-shift/internal/state"
	"github.com/vovakirdan/quantum-shift/internal/storage"
)

// volumeStep is the change per volume key press.
const volumeStep = 0.1

// SoundControls is the part of the audio manager the sound panel drives.
type SoundControls interface {
	SetMusicVolume(v float64)
	SetSFXVolume(v float64)
	Volumes() (music, sfx float64)
	FailedSounds() []state.SoundKind
}

// CueReporter reports what the sound output last played.
type CueReporter interface {
	LastCue() (state.SoundKind, bool)
	Music() (state.SoundKind, bool)
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    textinput.Model
	sound    SoundControls
	cues     CueReporter
	logger   *log.Logger
	player   string
	panel    bool // Sound panel open
	quitting bool
	saved    bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPlayer sets the name stored with finished runs.
func WithPlayer(name string) ModelOption {
	return func(m *Model) {
		m.player = name
	}
}

// WithSound enables the sound panel.
func WithSound(s SoundControls) ModelOption {
	return func(m *Model) {
		m.sound = s
	}
}

// WithCues shows the current track and last effect in the sound panel.
func WithCues(c CueReporter) ModelOption {
	return func(m *Model) {
		m.cues = c
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModel creates a new Bubble Tea model for the given game. A nil store
// disables the score history.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 16

	m := Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  in,
		logger: log.Default(),
		player: "local",
	}
	m.help.Width = cfg.ScreenW
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(cfg)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.input.Focused() {
		return m.handleAnswerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Sound):
		m.panel = !m.panel
		return m, nil
	case key.Matches(msg, m.keys.Answer):
		if m.game.Paused() {
			return m, nil
		}
		m.panel = false
		cmd := m.input.Focus()
		return m, cmd
	}

	if m.panel && m.sound != nil && m.adjustVolume(msg) {
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if action == core.ActionReset {
		m.saveRun()
	}
	out := m.game.HandleAction(action, false)
	if out == interaction.OutcomeApplied && action == core.ActionReset {
		m.saved = false
	}
	return m, nil
}

// handleAnswerKey routes keys while the answer field has focus.
func (m Model) handleAnswerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Answer):
		if fb := m.game.Submit(m.input.Value()); fb != interaction.FeedbackInvalid {
			m.input.Reset()
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) adjustVolume(msg tea.KeyMsg) bool {
	music, sfx := m.sound.Volumes()
	switch {
	case key.Matches(msg, m.keys.MusicUp):
		m.sound.SetMusicVolume(music + volumeStep)
	case key.Matches(msg, m.keys.MusicDown):
		m.sound.SetMusicVolume(music - volumeStep)
	case key.Matches(msg, m.keys.SFXUp):
		m.sound.SetSFXVolume(sfx + volumeStep)
	case key.Matches(msg, m.keys.SFXDown):
		m.sound.SetSFXVolume(sfx - volumeStep)
	default:
		return false
	}
	return true
}

// handleResize processes window resize events. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	m.game.Resize(msg.Width, msg.Height-1)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.game.Step(m.config.TickSeconds())
	return m, tickCmd(m.config.TickRate)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.saveRun()
	m.quitting = true
	return m, tea.Quit
}

// saveRun records the current run once if it scored.
func (m *Model) saveRun() {
	score := m.game.State().Score
	if m.saved || m.store == nil || score <= 0 {
		return
	}
	run := storage.NewRun(m.player, score, m.game.Store().Stats(), m.game.Elapsed())
	run, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "player", m.player, "error", err)
		return
	}
	m.saved = true
	m.logger.Info("run saved", "player", m.player, "score", score, "run", run.RunID)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen, m.inputView())

	dir := filepath.Join(os.Getenv("HOME"), ".quantum", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	snap := m.game.Snapshot()
	header := fmt.Sprintf("# score=%d energy=%d reality=%s time=%s gravity=%s\n",
		snap.Score, snap.Energy, snap.Reality, snap.Time, snap.Gravity)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(header+m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

func (m Model) inputView() game.InputView {
	iv := game.InputView{
		Focused: m.input.Focused(),
		Text:    m.input.Value(),
	}
	if m.panel {
		iv.Overlay = m.soundPanel()
	}
	return iv
}

// soundPanel returns the sound panel lines.
func (m Model) soundPanel() []string {
	if m.sound == nil {
		return []string{"Sound Controls", "Sound unavailable"}
	}
	music, sfx := m.sound.Volumes()
	lines := []string{
		"Sound Controls",
		fmt.Sprintf("Music %3d%%", int(music*100+0.5)),
		fmt.Sprintf("SFX   %3d%%", int(sfx*100+0.5)),
	}
	if failed := m.sound.FailedSounds(); len(failed) > 0 {
		names := make([]string, len(failed))
		for i, k := range failed {
			names[i] = k.String()
		}
		lines = append(lines, "Failed: "+strings.Join(names, ", "))
	}
	if m.cues != nil {
		if k, ok := m.cues.Music(); ok {
			lines = append(lines, "Track: "+k.String())
		}
		if k, ok := m.cues.LastCue(); ok {
			lines = append(lines, "Last:  "+k.String())
		}
	}
	return lines
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen, m.inputView())

	var keys help.KeyMap = m.keys
	switch {
	case m.input.Focused():
		keys = answerHelp{m.keys}
	case m.panel:
		keys = soundHelp{m.keys}
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(g, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
