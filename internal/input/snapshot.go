package input

// Gamepad button bits, following the common Linux joystick layout
// (A, B, X, Y on bits 0-3, Start on bit 7).
const (
	ButtonConfirm  = 0
	ButtonCancel   = 1
	ButtonFavorite = 2
	ButtonSearch   = 3
	ButtonQuit     = 7
)

// Snapshot is one raw gamepad reading with axes normalized to [-1, 1].
type Snapshot struct {
	Buttons uint32
	Axes    []float64
}

// Direction collapses the d-pad and left stick into one x/y pair. Linux
// joystick drivers expose the d-pad as axes 6/7; the d-pad wins over the
// stick whenever it is non-neutral, same as the usual emulator convention.
func (s Snapshot) Direction() (x, y float64) {
	if len(s.Axes) > 7 && (s.Axes[6] != 0 || s.Axes[7] != 0) {
		return s.Axes[6], s.Axes[7]
	}
	if len(s.Axes) > 1 {
		return s.Axes[0], s.Axes[1]
	}
	return 0, 0
}
