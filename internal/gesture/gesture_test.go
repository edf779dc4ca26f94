package gesture

import "testing"

func TestClassifyPinchEntryAndExit(t *testing.T) {
	h := NewHand()

	in := Input{Thumb: Point{0, 0}, Index: Point{30, 0}, Middle: Point{200, 0}}
	r := h.Classify(in, true) // d48=30 < MergeDist
	if r.State != Pinch || !r.HasPinch {
		t.Fatalf("expected pinch on entry, got %+v", r)
	}

	// Move apart past MergeDist but still under UnmergeDist: hysteresis
	// should keep it pinched.
	in.Index = Point{75, 0} // d48=75, between 60 and 80
	r = h.Classify(in, true)
	if r.State != Pinch {
		t.Fatalf("expected pinch to persist inside hysteresis band, got %v", r.State)
	}

	// Cross the exit threshold.
	in.Index = Point{90, 0} // d48=90 > UnmergeDist
	r = h.Classify(in, true)
	if r.State == Pinch {
		t.Fatalf("expected pinch to release past UnmergeDist, got %v", r.State)
	}
}

func TestClassifyHysteresisNoFlicker(t *testing.T) {
	h := NewHand()
	in := Input{Thumb: Point{0, 0}, Index: Point{40, 0}, Middle: Point{300, 0}}
	if r := h.Classify(in, true); r.State != Pinch {
		t.Fatalf("setup: expected pinch, got %v", r.State)
	}

	for i, d := range []float64{70, 75, 70, 75, 70} {
		in.Index = Point{d, 0}
		r := h.Classify(in, true)
		if r.State != Pinch {
			t.Fatalf("frame %d: d48=%v caused flicker out of pinch: %v", i, d, r.State)
		}
	}
}

func TestClassifyGrabFallsThroughFromPinch(t *testing.T) {
	h := NewHand()
	in := Input{Thumb: Point{0, 0}, Index: Point{200, 0}, Middle: Point{230, 0}} // d48=200, d812=30
	r := h.Classify(in, true)
	if r.State != Grab || !r.HasGrab {
		t.Fatalf("expected grab, got %+v", r)
	}
	if r.GrabPoint != (Point{X: 215, Y: 0}) {
		t.Fatalf("unexpected grab point: %+v", r.GrabPoint)
	}
}

func TestClassifyUndetectedResetsHysteresis(t *testing.T) {
	h := NewHand()
	in := Input{Thumb: Point{0, 0}, Index: Point{30, 0}, Middle: Point{300, 0}}
	if r := h.Classify(in, true); r.State != Pinch {
		t.Fatalf("setup: expected pinch, got %v", r.State)
	}

	if r := h.Classify(Input{}, false); r.State != Idle {
		t.Fatalf("expected idle when hand not detected, got %v", r.State)
	}

	// With memory reset, a mid-band distance should now NOT be pinch
	// (entry threshold applies, not the looser exit one).
	in.Index = Point{70, 0}
	r := h.Classify(in, true)
	if r.State == Pinch {
		t.Fatalf("expected entry threshold after reset, got pinch at d48=70")
	}
}

func TestMirrorX(t *testing.T) {
	if got := MirrorX(0, 640); got != 639 {
		t.Fatalf("MirrorX(0, 640) = %v, want 639", got)
	}
	if got := MirrorX(639, 640); got != 0 {
		t.Fatalf("MirrorX(639, 640) = %v, want 0", got)
	}
}
