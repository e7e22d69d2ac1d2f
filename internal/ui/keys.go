package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-starmap/internal/state"
)

// defaultHoldWindow is how long a continuous key stays held after its last
// KeyMsg. Terminals report no key release, only auto-repeat, so a key is
// treated as released once repeats stop arriving.
const defaultHoldWindow = 180 * time.Millisecond

// continuous keys change the view for as long as they are held.
var continuous = map[string]bool{
	state.KeyRotateLeft:  true,
	state.KeyRotateRight: true,
	state.KeyTiltUp:      true,
	state.KeyTiltDown:    true,
	state.KeyYawLeft:     true,
	state.KeyYawRight:    true,
	state.KeyPanUp:       true,
	state.KeyPanDown:     true,
	state.KeyPanLeft:     true,
	state.KeyPanRight:    true,
	state.KeyDollyIn:     true,
	state.KeyDollyOut:    true,
	state.KeyZoomIn:      true,
	state.KeyZoomInAlt:   true,
	state.KeyZoomOut:     true,
	state.KeyShearXDown:  true,
	state.KeyShearXUp:    true,
	state.KeyShearYDown:  true,
	state.KeyShearYUp:    true,
}

// keyLatch turns auto-repeat key presses into held keys.
type keyLatch struct {
	window time.Duration
	until  map[string]time.Time
}

func newKeyLatch(window time.Duration) *keyLatch {
	if window <= 0 {
		window = defaultHoldWindow
	}
	return &keyLatch{window: window, until: make(map[string]time.Time)}
}

// press marks key held until now plus the window.
func (l *keyLatch) press(key string, now time.Time) {
	l.until[key] = now.Add(l.window)
}

// held returns the keys still held at now and forgets expired ones.
func (l *keyLatch) held(now time.Time) map[string]bool {
	out := make(map[string]bool, len(l.until))
	for k, t := range l.until {
		if now.After(t) {
			delete(l.until, k)
			continue
		}
		out[k] = true
	}
	return out
}

// pendingInput collects the events of one frame.
type pendingInput struct {
	pressed   []string
	x, y      int
	primary   bool
	secondary bool
	scroll    int
}

// key records a key press. Continuous keys go to the latch, the rest are
// delivered once on the next frame.
func (p *pendingInput) key(msg tea.KeyMsg, latch *keyLatch, now time.Time) {
	k := msg.String()
	if continuous[k] {
		latch.press(k, now)
		return
	}
	p.pressed = append(p.pressed, k)
}

// mouse records pointer position, button state and wheel notches.
func (p *pendingInput) mouse(msg tea.MouseMsg) {
	p.x, p.y = msg.X, msg.Y
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			p.primary = true
		case tea.MouseButtonRight:
			p.secondary = true
		case tea.MouseButtonWheelUp:
			p.scroll++
		case tea.MouseButtonWheelDown:
			p.scroll--
		}
	case tea.MouseActionRelease:
		// Some terminals report every release as MouseButtonNone.
		switch msg.Button {
		case tea.MouseButtonLeft:
			p.primary = false
		case tea.MouseButtonRight:
			p.secondary = false
		default:
			p.primary, p.secondary = false, false
		}
	}
}

// take builds the frame input and resets the per-frame events. Button
// state and pointer position carry over.
func (p *pendingInput) take(held map[string]bool) state.Input {
	in := state.Input{
		Pressed:   p.pressed,
		Held:      held,
		PointerX:  p.x,
		PointerY:  p.y,
		Primary:   p.primary,
		Secondary: p.secondary,
		Scroll:    p.scroll,
	}
	p.pressed = nil
	p.scroll = 0
	return in
}
