package gesturedeck

import (
	"math"
	"testing"
)

func TestApplyBPMSyncMatchesTargetSpan(t *testing.T) {
	left := NewDeck(Left)
	right := NewDeck(Right)

	leftSong := fixtureSong(make([][2]float32, 120000)) // 120 BPM native stand-in
	leftSong.BPM = 120
	rightSong := fixtureSong(make([][2]float32, 120000))
	rightSong.BPM = 140

	left.song.Store(leftSong)
	right.song.Store(rightSong)

	ApplyBPMSync(left, right)

	target := (120.0 + 140.0) / 2 // 130

	// Each deck was stretched to len*BPM/target frames, so scaling its new
	// length by target/BPM recovers the shared 120000-frame source span.
	ls, rs := left.Song(), right.Song()
	leftSpanSeconds := float64(ls.maxLen()) / SampleRate * (target / ls.BPM)
	rightSpanSeconds := float64(rs.maxLen()) / SampleRate * (target / rs.BPM)

	if math.Abs(leftSpanSeconds-rightSpanSeconds) > 1.0/SampleRate*2 {
		t.Fatalf("decks were not stretched by BPM/target: left=%v right=%v", leftSpanSeconds, rightSpanSeconds)
	}

	if left.Position() != 0 || right.Position() != 0 {
		t.Fatalf("expected both decks reset to position 0 after sync")
	}
}

func TestApplyBPMSyncNoopWithoutBothSongs(t *testing.T) {
	left := NewDeck(Left)
	right := NewDeck(Right)
	left.song.Store(fixtureSong(make([][2]float32, 10)))
	// right has no song loaded.

	ApplyBPMSync(left, right)
	if right.Song() != nil {
		t.Fatalf("expected right deck to remain unloaded")
	}
}
