package widget

import "github.com/chriskillpack/gesturedeck/internal/gesture"

// CueButton is edge-triggered identically to ToggleButton but carries no
// on/off display state and fires a single Activate callback per visit.
type CueButton struct {
	Region
	Activate func()

	latched map[HandID]bool
}

func NewCueButton(region Region, activate func()) *CueButton {
	return &CueButton{Region: region, Activate: activate, latched: make(map[HandID]bool)}
}

func (c *CueButton) Update(hand HandID, g gesture.State, p gesture.Point) {
	inside := g == gesture.Pinch && c.Contains(p)
	if !inside {
		c.latched[hand] = false
		return
	}
	if c.latched[hand] {
		return
	}
	c.latched[hand] = true

	if c.Activate != nil {
		c.Activate()
	}
}

func (c *CueButton) Draw(s Surface) {
	s.DrawRect(c.X, c.Y, c.W, c.H, false, "cue")
}

var _ Widget = (*CueButton)(nil)
