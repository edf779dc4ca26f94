package gesturedeck

// waveformBuckets is the number of peaks in a waveform_summary: a fixed,
// cheap-to-redraw size regardless of song length, so a multi-minute song
// decimates to far more than 1000 native samples per peak.
const waveformBuckets = 1000

// buildWaveformSummary computes a peak-magnitude summary over the mono sum
// of every stem in stems, decimated to waveformBuckets buckets (or fewer,
// for very short songs). It is called once at select-time and after BPM
// sync, never from the audio callback.
func buildWaveformSummary(stems [StemCount][][2]float32) []float32 {
	maxLen := 0
	for _, s := range stems {
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}
	if maxLen == 0 {
		return nil
	}

	buckets := waveformBuckets
	if maxLen < buckets {
		buckets = maxLen
	}
	summary := make([]float32, buckets)

	bucketLen := float64(maxLen) / float64(buckets)
	for b := 0; b < buckets; b++ {
		start := int(float64(b) * bucketLen)
		end := int(float64(b+1) * bucketLen)
		if end <= start {
			end = start + 1
		}
		if end > maxLen {
			end = maxLen
		}

		var peak float32
		for i := start; i < end; i++ {
			var sum float32
			for _, s := range stems {
				if i < len(s) {
					sum += s[i][0] + s[i][1]
				}
			}
			mag := sum
			if mag < 0 {
				mag = -mag
			}
			if mag > peak {
				peak = mag
			}
		}
		summary[b] = peak
	}
	return summary
}
