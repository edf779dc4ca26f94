package widget

import "github.com/chriskillpack/gesturedeck/internal/gesture"

// ToggleButton is a play/stem toggle: edge-triggered on pinch entry,
// latched while the pinch dwells inside the region so it fires exactly
// once per visit regardless of how many frames the pinch stays.
type ToggleButton struct {
	Region
	Label string

	On bool

	Activate   func()
	Deactivate func()

	latched map[HandID]bool
}

// NewToggleButton returns a toggle starting in state on, invoking activate
// when it flips on and deactivate when it flips off.
func NewToggleButton(region Region, label string, on bool, activate, deactivate func()) *ToggleButton {
	return &ToggleButton{
		Region:     region,
		Label:      label,
		On:         on,
		Activate:   activate,
		Deactivate: deactivate,
		latched:    make(map[HandID]bool),
	}
}

func (t *ToggleButton) Update(hand HandID, g gesture.State, p gesture.Point) {
	inside := g == gesture.Pinch && t.Contains(p)
	if !inside {
		t.latched[hand] = false
		return
	}
	if t.latched[hand] {
		return
	}
	t.latched[hand] = true

	t.On = !t.On
	if t.On {
		if t.Activate != nil {
			t.Activate()
		}
	} else if t.Deactivate != nil {
		t.Deactivate()
	}
}

func (t *ToggleButton) Draw(s Surface) {
	s.DrawRect(t.X, t.Y, t.W, t.H, t.On, t.Label)
}

var _ Widget = (*ToggleButton)(nil)
