// Package gesture implements a hysteresis-based gesture classifier: per
// hand, it turns the raw pixel distance between thumb, index and middle
// fingertips into a discrete {idle, pinch, grab} state, with separate
// entry and exit thresholds so a hand hovering near the boundary doesn't
// flicker between states frame to frame.
package gesture

import "math"

// State is the classified gesture for one hand on one frame.
type State int

const (
	Idle State = iota
	Pinch
	Grab
)

func (s State) String() string {
	switch s {
	case Pinch:
		return "pinch"
	case Grab:
		return "grab"
	default:
		return "idle"
	}
}

// Entry and exit thresholds (in pixels, after scaling normalized landmark
// coordinates by frame width/height) for both pinch and grab. A gesture
// that is already active uses the looser exit threshold, which is what
// prevents oscillation when the fingers hover near the boundary.
const (
	MergeDist   = 60.0
	UnmergeDist = 80.0
)

// Point is a 2D pixel-space coordinate, image-space (not mirrored for
// display).
type Point struct {
	X, Y float64
}

// Input is the three fingertip landmarks (thumb tip, index tip, middle tip)
// the classifier consumes, already scaled to pixel coordinates.
type Input struct {
	Thumb, Index, Middle Point
}

// Result is one hand's classification for the current frame.
type Result struct {
	State      State
	PinchPoint Point
	HasPinch   bool
	GrabPoint  Point
	HasGrab    bool
}

// Hand tracks one hand's hysteresis memory across frames. Create one per
// tracked hand (left, right) and reuse it every frame; do not share a Hand
// between two physical hands.
type Hand struct {
	prev State
}

func NewHand() *Hand { return &Hand{} }

// Classify runs one frame of classification. detected=false (the hand
// wasn't seen this frame) resets hysteresis memory and returns Idle.
func (h *Hand) Classify(in Input, detected bool) Result {
	if !detected {
		h.prev = Idle
		return Result{State: Idle}
	}

	d48 := manhattan(in.Thumb, in.Index)
	pinchThresh := MergeDist
	if h.prev == Pinch {
		pinchThresh = UnmergeDist
	}
	if d48 < pinchThresh {
		h.prev = Pinch
		return Result{State: Pinch, PinchPoint: midpoint(in.Thumb, in.Index), HasPinch: true}
	}

	d812 := manhattan(in.Index, in.Middle)
	grabThresh := MergeDist
	if h.prev == Grab {
		grabThresh = UnmergeDist
	}
	if d812 < grabThresh {
		h.prev = Grab
		return Result{State: Grab, GrabPoint: midpoint(in.Index, in.Middle), HasGrab: true}
	}

	h.prev = Idle
	return Result{State: Idle}
}

func manhattan(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// MirrorX converts an image-space x coordinate into display-space:
// x_display = width - 1 - x_image.
func MirrorX(x float64, width int) float64 {
	return float64(width) - 1 - x
}
