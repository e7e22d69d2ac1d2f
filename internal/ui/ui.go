// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starmap/internal/logging"
	"github.com/litescript/ls-starmap/internal/sky"
	"github.com/litescript/ls-starmap/internal/state"
	"github.com/litescript/ls-starmap/internal/version"
	"github.com/litescript/ls-starmap/internal/view"
)

const (
	DefaultFPS = 30
	MinFPS     = 1
	MaxFPS     = 60

	// chromeLines is the header and footer around the sky view.
	chromeLines = 2
)

// frameMsg drives one frame of the interaction loop.
type frameMsg time.Time

// Model is the root Bubble Tea model. It owns the interaction state and
// renders a new frame on every tick.
type Model struct {
	// Dependencies
	sky      *sky.Sky
	pipeline *view.Pipeline
	cfg      state.Config
	logger   *logging.Logger

	// Frame loop
	interval time.Duration
	now      func() time.Time
	last     time.Time
	latch    *keyLatch
	input    pendingInput
	inter    state.Interaction

	// UI state
	width   int
	height  int
	ready   bool
	err     error
	skyView SkyViewModel
}

// Option configures a Model.
type Option func(*Model)

// WithPipeline sets the render pipeline.
func WithPipeline(p *view.Pipeline) Option {
	return func(m *Model) {
		m.pipeline = p
	}
}

// WithInteractionConfig sets the interaction rates.
func WithInteractionConfig(cfg state.Config) Option {
	return func(m *Model) {
		m.cfg = cfg
	}
}

// WithFPS sets the frame rate, clamped to [MinFPS, MaxFPS].
func WithFPS(fps int) Option {
	return func(m *Model) {
		m.interval = time.Second / time.Duration(ClampFPS(fps))
	}
}

// WithHoldWindow sets how long a key stays held after its last repeat.
func WithHoldWindow(d time.Duration) Option {
	return func(m *Model) {
		m.latch = newKeyLatch(d)
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithClock replaces time.Now for key hold expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// ClampFPS limits fps to [MinFPS, MaxFPS].
func ClampFPS(fps int) int {
	if fps < MinFPS {
		return MinFPS
	}
	if fps > MaxFPS {
		return MaxFPS
	}
	return fps
}

// New creates a new root UI model for sk starting in mode.
func New(sk *sky.Sky, mode state.ViewMode, opts ...Option) Model {
	m := Model{
		sky:      sk,
		pipeline: view.NewPipeline(view.DefaultConfig()),
		cfg:      state.DefaultConfig(),
		logger:   logging.Discard(),
		interval: time.Second / DefaultFPS,
		now:      time.Now,
		latch:    newKeyLatch(defaultHoldWindow),
		inter:    state.NewInteraction(mode),
		skyView:  NewSkyViewModel(sk.Projector.String()),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Interaction returns the current interaction state.
func (m Model) Interaction() state.Interaction {
	return m.inter
}

// Frame returns the last rendered frame.
func (m Model) Frame() view.Frame {
	return m.skyView.frame
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.interval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case state.KeyQuit, state.KeyInterrupt:
			return m, tea.Quit
		}
		m.input.key(msg, m.latch, m.now())

	case tea.MouseMsg:
		m.input.mouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.skyView = m.skyView.SetSize(msg.Width, msg.Height-chromeLines)
		m.render()

	case frameMsg:
		t := time.Time(msg)
		var dt time.Duration
		if !m.last.IsZero() {
			dt = t.Sub(m.last)
		}
		m.last = t

		in := m.input.take(m.latch.held(t))
		if !state.Update(&m.inter, in, dt, m.cfg) {
			return m, tea.Quit
		}
		if in.Pressed != nil {
			m.logger.Debug("keys %v, state %s", in.Pressed, m.inter.Mode)
		}
		m.render()
		return m, frameCmd(m.interval)
	}

	return m, nil
}

// render rebuilds the sky frame for the current state.
func (m *Model) render() {
	if !m.ready {
		return
	}
	vp := m.skyView.Viewport()
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	f, err := m.pipeline.Render(m.sky, &m.inter, vp)
	if err != nil {
		m.err = err
		m.logger.WarnOnce("render:"+err.Error(), "render failed: %v", err)
		return
	}
	m.err = nil
	m.skyView = m.skyView.SetFrame(f, m.inter)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.renderHeader() + "\n" + m.skyView.View() + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := gradientText(" ls-starmap ")
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	return title + muted.Render(fmt.Sprintf("v%s", version.Version)) + "  " + m.renderTabs()
}

func (m Model) renderTabs() string {
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for _, mode := range []state.ViewMode{state.View2D, state.View3D} {
		tab := "[m] " + mode.String()
		if mode == m.inter.Mode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))

	if m.err != nil {
		return "  " + errorStyle.Render("ERROR: "+m.err.Error())
	}

	var help string
	switch m.inter.Mode {
	case state.View3D:
		help = "←/→: roll | ↑/↓: tilt | ,/.: yaw | wasd: pan | pgup/pgdn: dolly | +/-: zoom | drag: pan | right-drag: orbit"
	default:
		help = "←/→: rotate | wasd: pan | +/-: zoom | [/]{/}: shear | drag: pan | right-drag: rotate"
	}
	help += " | f/x/y: reflect | c: lines | l: labels | r: reset | q: quit"
	return "  " + dimStyle.Render(help)
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// gradientText renders text with a horizontal blue to pink gradient.
func gradientText(text string) string {
	runes := []rune(text)
	var b strings.Builder
	for i, r := range runes {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(gradientColor(i, len(runes))))
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// gradientColor returns the hex color at col of a width-wide gradient:
// blue -> purple -> magenta -> pink.
func gradientColor(col, width int) string {
	if width <= 1 {
		return "#3B82F6"
	}
	x := float64(col) / float64(width-1)

	var r, g, b float64
	switch {
	case x < 0.33:
		t := x / 0.33
		r, g, b = lerp(59, 139, t), lerp(130, 92, t), 246
	case x < 0.66:
		t := (x - 0.33) / 0.33
		r, g, b = lerp(139, 217, t), lerp(92, 70, t), lerp(246, 239, t)
	default:
		t := (x - 0.66) / 0.34
		r, g, b = lerp(217, 236, t), lerp(70, 72, t), lerp(239, 153, t)
	}
	return fmt.Sprintf("#%02X%02X%02X", channel(r), channel(g), channel(b))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func channel(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return int(math.Round(v))
}
