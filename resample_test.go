package gesturedeck

import (
	"math"
	"testing"
)

func TestResampleStereoPreservesEndpoints(t *testing.T) {
	src := make([][2]float32, 10)
	for i := range src {
		src[i] = [2]float32{float32(i), -float32(i)}
	}

	out := resampleStereo(src, 20)
	if len(out) != 20 {
		t.Fatalf("got %d frames, want 20", len(out))
	}
	if out[0] != src[0] {
		t.Fatalf("first frame = %v, want %v", out[0], src[0])
	}
	if out[len(out)-1] != src[len(src)-1] {
		t.Fatalf("last frame = %v, want %v", out[len(out)-1], src[len(src)-1])
	}
}

func TestResampleStereoShrink(t *testing.T) {
	src := make([][2]float32, 100)
	for i := range src {
		src[i] = [2]float32{float32(i), 0}
	}

	out := resampleStereo(src, 50)
	if len(out) != 50 {
		t.Fatalf("got %d frames, want 50", len(out))
	}
	// Monotonic increasing since source is monotonic increasing.
	for i := 1; i < len(out); i++ {
		if out[i][0] < out[i-1][0] {
			t.Fatalf("expected monotonic resample, out[%d]=%v < out[%d]=%v", i, out[i][0], i-1, out[i-1][0])
		}
	}
}

func TestLerpStereoMidpoint(t *testing.T) {
	buf := [][2]float32{{0, 0}, {2, -2}}
	got := lerpStereo(buf, 0.5)
	want := [2]float32{1, -1}
	if math.Abs(float64(got[0]-want[0])) > 1e-6 || math.Abs(float64(got[1]-want[1])) > 1e-6 {
		t.Fatalf("lerpStereo(0.5) = %v, want %v", got, want)
	}
}

func TestLerpStereoUpperEndpointClamp(t *testing.T) {
	buf := [][2]float32{{0, 0}, {5, 5}}
	got := lerpStereo(buf, 1.0)
	if got != buf[1] {
		t.Fatalf("lerpStereo at exact upper bound = %v, want %v", got, buf[1])
	}
}
