// Package widget implements a small set of interactive controls,
// hit-tested against the gesture classifier's pinch and grab points, each
// driving a Deck through a caller-supplied callback. Widget polymorphism
// is expressed as a shared interface implemented by tagged variants
// rather than inheritance.
package widget

import "github.com/chriskillpack/gesturedeck/internal/gesture"

// HandID identifies which physical hand an Update call is for, so a widget
// can keep independent latch/angle memory per hand. Two hands share a
// widget's region but never its per-hand state.
type HandID string

// Widget is the common protocol every control implements: a hit test, a
// per-hand-per-frame update, and a draw call against an externally owned
// Surface.
type Widget interface {
	Contains(p gesture.Point) bool
	Update(hand HandID, g gesture.State, p gesture.Point)
	Draw(s Surface)
}

// Surface is the drawing collaborator a widget renders itself onto. Pixel
// primitives (lines, circles, text) are an external concern; Surface is
// the narrow interface this package needs from it.
type Surface interface {
	DrawRect(x, y, w, h float64, on bool, label string)
	DrawCircle(cx, cy, radius, angle float64)
	DrawWaveform(summary []float32, posRatio float64, x, y, w, h float64)
}

// Region is a rectangular bounding box shared by the toggle, cue, slider
// and waveform widgets.
type Region struct {
	X, Y, W, H float64
}

func (r Region) Contains(p gesture.Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// CircleRegion is the bounding region for the rotary platter.
type CircleRegion struct {
	CX, CY, Radius float64
}

func (c CircleRegion) Contains(p gesture.Point) bool {
	dx, dy := p.X-c.CX, p.Y-c.CY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
