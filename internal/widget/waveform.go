package widget

import "github.com/chriskillpack/gesturedeck/internal/gesture"

// Waveform is a read-only display widget: no hit testing drives any
// control, it simply renders the deck's peak summary centered on its
// current playback position.
type Waveform struct {
	Region

	// Summary returns the deck's current waveform_summary.
	Summary func() []float32
	// PositionRatio returns position/duration in [0,1].
	PositionRatio func() float64
}

func NewWaveform(region Region, summary func() []float32, posRatio func() float64) *Waveform {
	return &Waveform{Region: region, Summary: summary, PositionRatio: posRatio}
}

// Contains always reports false: the waveform strip accepts no input.
func (w *Waveform) Contains(gesture.Point) bool { return false }

func (w *Waveform) Update(HandID, gesture.State, gesture.Point) {}

func (w *Waveform) Draw(s Surface) {
	var summary []float32
	var ratio float64
	if w.Summary != nil {
		summary = w.Summary()
	}
	if w.PositionRatio != nil {
		ratio = w.PositionRatio()
	}
	s.DrawWaveform(summary, ratio, w.X, w.Y, w.W, w.H)
}

var _ Widget = (*Waveform)(nil)
