package state

// Key names, matching the terminal key strings delivered by the UI.
const (
	KeyRotateLeft  = "left"
	KeyRotateRight = "right"
	KeyTiltUp      = "up"
	KeyTiltDown    = "down"
	KeyYawLeft     = ","
	KeyYawRight    = "."
	KeyPanUp       = "w"
	KeyPanDown     = "s"
	KeyPanLeft     = "a"
	KeyPanRight    = "d"
	KeyDollyIn     = "pgup"
	KeyDollyOut    = "pgdown"
	KeyZoomIn      = "+"
	KeyZoomInAlt   = "="
	KeyZoomOut     = "-"
	KeyShearXDown  = "["
	KeyShearXUp    = "]"
	KeyShearYDown  = "{"
	KeyShearYUp    = "}"

	KeyReflect        = "f"
	KeyReflectX       = "x"
	KeyReflectY       = "y"
	KeyConstellations = "c"
	KeyLabels         = "l"
	KeyMode           = "m"
	KeyReset          = "r"
	KeyQuit           = "q"
	KeyInterrupt      = "ctrl+c"
)

// Input is one frame of normalized interaction.
type Input struct {
	Pressed []string        // keys that went down this frame, in order
	Held    map[string]bool // keys currently held

	PointerX, PointerY int
	Primary            bool // primary button down
	Secondary          bool // secondary button down
	Scroll             int  // wheel notches, positive zooms in

	Quit bool
}

// IsHeld reports whether key is held.
func (in Input) IsHeld(key string) bool {
	return in.Held[key]
}

// axis returns +1, -1 or 0 for a pair of opposing held keys.
func (in Input) axis(neg, pos string) float64 {
	v := 0.0
	if in.IsHeld(neg) {
		v--
	}
	if in.IsHeld(pos) {
		v++
	}
	return v
}
