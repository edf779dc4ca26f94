package widget

import "github.com/chriskillpack/gesturedeck/internal/gesture"

// DefaultRateMin and DefaultRateMax bound the tempo slider's mapping range.
const (
	DefaultRateMin = 0.5
	DefaultRateMax = 1.5
)

// Slider is a continuous BPM/tempo control. Unlike the toggle and cue
// buttons it is not edge-triggered: every frame the pinch point is inside,
// it recomputes and applies a rate.
type Slider struct {
	Region
	RateMin, RateMax float64

	SetRate func(rate float64)
}

func NewSlider(region Region, setRate func(float64)) *Slider {
	return &Slider{Region: region, RateMin: DefaultRateMin, RateMax: DefaultRateMax, SetRate: setRate}
}

func (s *Slider) Update(hand HandID, g gesture.State, p gesture.Point) {
	if g != gesture.Pinch || !s.Contains(p) {
		return
	}

	frac := (p.X - s.X) / s.W
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	rate := s.RateMin + frac*(s.RateMax-s.RateMin)
	if s.SetRate != nil {
		s.SetRate(rate)
	}
}

func (s *Slider) Draw(surf Surface) {
	surf.DrawRect(s.X, s.Y, s.W, s.H, false, "tempo")
}

var _ Widget = (*Slider)(nil)
