package widget

import (
	"math"
	"testing"

	"github.com/chriskillpack/gesturedeck/internal/gesture"
)

func TestToggleButtonFiresOncePerDwell(t *testing.T) {
	fires := 0
	tb := NewToggleButton(Region{X: 0, Y: 0, W: 10, H: 10}, "play", false, func() { fires++ }, func() { fires-- })

	inside := gesture.Point{X: 5, Y: 5}
	for i := 0; i < 30; i++ {
		tb.Update("hand1", gesture.Pinch, inside)
	}
	if fires != 1 {
		t.Fatalf("expected exactly one activate over a 30-frame dwell, got %d", fires)
	}
	if !tb.On {
		t.Fatalf("expected On=true after activate")
	}

	tb.Update("hand1", gesture.Idle, gesture.Point{})
	if tb.On != true {
		t.Fatalf("leaving the region must not itself toggle state")
	}

	// Re-enter: should fire deactivate once.
	for i := 0; i < 5; i++ {
		tb.Update("hand1", gesture.Pinch, inside)
	}
	if fires != 0 {
		t.Fatalf("expected deactivate to cancel out the earlier activate, got fires=%d", fires)
	}
	if tb.On {
		t.Fatalf("expected On=false after second toggle")
	}
}

func TestToggleButtonIndependentPerHand(t *testing.T) {
	count := 0
	tb := NewToggleButton(Region{X: 0, Y: 0, W: 10, H: 10}, "mute-bass", true, func() { count++ }, func() { count++ })
	p := gesture.Point{X: 1, Y: 1}

	tb.Update("left", gesture.Pinch, p)
	tb.Update("right", gesture.Pinch, p)
	if count != 2 {
		t.Fatalf("expected both hands to independently trigger an edge, got %d", count)
	}
}

func TestCueButtonEdgeTriggered(t *testing.T) {
	n := 0
	cb := NewCueButton(Region{X: 0, Y: 0, W: 5, H: 5}, func() { n++ })
	p := gesture.Point{X: 2, Y: 2}

	for i := 0; i < 10; i++ {
		cb.Update("h", gesture.Pinch, p)
	}
	if n != 1 {
		t.Fatalf("expected exactly one cue fire, got %d", n)
	}

	cb.Update("h", gesture.Idle, gesture.Point{})
	cb.Update("h", gesture.Pinch, p)
	if n != 2 {
		t.Fatalf("expected a second fire after leaving and re-entering, got %d", n)
	}
}

func TestPlatterHalfRotationTotalsOneAndAHalfPi(t *testing.T) {
	var total float64
	pl := NewPlatter(CircleRegion{CX: 0, CY: 0, Radius: 100}, func(ds float64) { total += ds })

	const steps = 10
	for i := 0; i <= steps; i++ {
		angle := math.Pi * float64(i) / steps
		p := gesture.Point{X: 50 * math.Cos(angle), Y: 50 * math.Sin(angle)}
		pl.Update("hand", gesture.Grab, p)
	}

	want := 1.5 * math.Pi
	if math.Abs(total-want) > 1e-9 {
		t.Fatalf("expected total seek of %v after a half rotation, got %v", want, total)
	}
	if math.Abs(pl.PlatterAngle-math.Pi) > 1e-9 {
		t.Fatalf("expected PlatterAngle=pi, got %v", pl.PlatterAngle)
	}
}

func TestPlatterGrabExitClearsTracking(t *testing.T) {
	var calls int
	pl := NewPlatter(CircleRegion{CX: 0, CY: 0, Radius: 100}, func(float64) { calls++ })

	pl.Update("h", gesture.Grab, gesture.Point{X: 50, Y: 0})
	pl.Update("h", gesture.Idle, gesture.Point{})
	// Re-entry should re-anchor, not produce a jump delta immediately.
	calls = 0
	pl.Update("h", gesture.Grab, gesture.Point{X: 0, Y: 50})
	if calls != 0 {
		t.Fatalf("expected the first frame after re-entry to anchor, not seek, got %d calls", calls)
	}
}

func TestSliderMapsPinchXToRate(t *testing.T) {
	var rate float64
	s := NewSlider(Region{X: 100, Y: 0, W: 200, H: 20}, func(r float64) { rate = r })

	s.Update("h", gesture.Pinch, gesture.Point{X: 100, Y: 10})
	if rate != DefaultRateMin {
		t.Fatalf("left edge: rate=%v, want %v", rate, DefaultRateMin)
	}

	s.Update("h", gesture.Pinch, gesture.Point{X: 300, Y: 10})
	if rate != DefaultRateMax {
		t.Fatalf("right edge: rate=%v, want %v", rate, DefaultRateMax)
	}

	s.Update("h", gesture.Pinch, gesture.Point{X: 200, Y: 10})
	want := (DefaultRateMin + DefaultRateMax) / 2
	if math.Abs(rate-want) > 1e-9 {
		t.Fatalf("midpoint: rate=%v, want %v", rate, want)
	}
}

func TestSliderIgnoresNonPinch(t *testing.T) {
	rate := -1.0
	s := NewSlider(Region{X: 0, Y: 0, W: 100, H: 20}, func(r float64) { rate = r })
	s.Update("h", gesture.Grab, gesture.Point{X: 50, Y: 10})
	if rate != -1.0 {
		t.Fatalf("expected no rate call for a non-pinch gesture, got %v", rate)
	}
}

func TestWaveformAcceptsNoInput(t *testing.T) {
	w := NewWaveform(Region{X: 0, Y: 0, W: 10, H: 10}, func() []float32 { return nil }, func() float64 { return 0 })
	if w.Contains(gesture.Point{X: 5, Y: 5}) {
		t.Fatalf("waveform must never report containment")
	}
}
