package gesturedeck

import "math"

// ApplyBPMSync time-stretches both decks' stems to the mean of their native
// BPMs by resampling each stem buffer (pitch-preserving - the sample rate
// doesn't change, only the buffer length does). Called after both decks
// have selected a song; a no-op if either has none loaded.
func ApplyBPMSync(left, right *Deck) {
	ls, rs := left.song.Load(), right.song.Load()
	if ls == nil || rs == nil {
		return
	}

	target := (ls.BPM + rs.BPM) / 2
	if target <= 0 {
		return
	}

	stretched := [2]*Song{
		stretchSong(ls, ls.BPM/target),
		stretchSong(rs, rs.BPM/target),
	}

	left.song.Store(stretched[0])
	left.positionBits.Store(0)
	right.song.Store(stretched[1])
	right.positionBits.Store(0)
}

// stretchSong returns a new Song with every stem resampled by ratio and its
// waveform summary rebuilt. BPM is left at its native value; the sync
// operation is expressed entirely as a change in buffer length.
func stretchSong(s *Song, ratio float64) *Song {
	out := &Song{Name: s.Name, BPM: s.BPM}
	for i, stem := range s.Stems {
		newLen := int(math.Round(float64(len(stem)) * ratio))
		out.Stems[i] = resampleStereo(stem, newLen)
	}
	out.Summary = buildWaveformSummary(out.Stems)
	return out
}
