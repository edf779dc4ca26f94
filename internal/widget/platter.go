package widget

import (
	"math"

	"github.com/chriskillpack/gesturedeck/internal/gesture"
)

// SecondsPerRadian is how many seconds-of-sample-advance a full radian of
// platter rotation is worth.
const SecondsPerRadian = 1.5

// Platter is a rotary turntable control. It tracks grab-gesture rotation
// per hand, converting angular delta (normalized for 2π wraparound) into
// Deck.Seek calls, and accumulates a display angle.
type Platter struct {
	CircleRegion

	PlatterAngle float64 // accumulated, for display, kept in [0, 2π)

	Seek func(ds float64)

	prevAngle map[HandID]float64
	tracking  map[HandID]bool
}

func NewPlatter(region CircleRegion, seek func(ds float64)) *Platter {
	return &Platter{
		CircleRegion: region,
		Seek:         seek,
		prevAngle:    make(map[HandID]float64),
		tracking:     make(map[HandID]bool),
	}
}

func (p *Platter) Update(hand HandID, g gesture.State, pt gesture.Point) {
	inside := g == gesture.Grab && p.Contains(pt)
	if !inside {
		p.tracking[hand] = false
		return
	}

	angle := math.Atan2(pt.Y-p.CY, pt.X-p.CX)
	if !p.tracking[hand] {
		p.tracking[hand] = true
		p.prevAngle[hand] = angle
		return
	}

	delta := normalizeAngle(angle - p.prevAngle[hand])
	p.prevAngle[hand] = angle

	p.PlatterAngle = math.Mod(p.PlatterAngle+delta, 2*math.Pi)
	if p.PlatterAngle < 0 {
		p.PlatterAngle += 2 * math.Pi
	}

	if p.Seek != nil {
		p.Seek(SecondsPerRadian * delta)
	}
}

// normalizeAngle maps a raw angular difference into (-π, π].
func normalizeAngle(delta float64) float64 {
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}

func (p *Platter) Draw(s Surface) {
	s.DrawCircle(p.CX, p.CY, p.Radius, p.PlatterAngle)
}

var _ Widget = (*Platter)(nil)
