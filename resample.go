package gesturedeck

// lerpStereo linearly interpolates a stereo sample at fractional index pos
// within buf. Callers must ensure 0 <= pos <= len(buf)-1; at the exact upper
// endpoint it returns buf[len(buf)-1] unchanged.
func lerpStereo(buf [][2]float32, pos float64) [2]float32 {
	i0 := int(pos)
	if i0 >= len(buf)-1 {
		return buf[len(buf)-1]
	}
	frac := float32(pos - float64(i0))
	a, b := buf[i0], buf[i0+1]
	return [2]float32{
		a[0] + (b[0]-a[0])*frac,
		a[1] + (b[1]-a[1])*frac,
	}
}

// resampleStereo produces a new buffer of newLen frames by linearly
// interpolating src across its full length. Used for pitch-preserving BPM
// sync: the sample rate is unchanged, only the buffer length is stretched
// or shrunk, which is what keeps the pitch fixed while the playback
// duration changes.
func resampleStereo(src [][2]float32, newLen int) [][2]float32 {
	if newLen <= 0 {
		return nil
	}
	if len(src) == 0 {
		return make([][2]float32, newLen)
	}
	if len(src) == 1 {
		out := make([][2]float32, newLen)
		for i := range out {
			out[i] = src[0]
		}
		return out
	}

	out := make([][2]float32, newLen)
	// ratio maps an output index to a fractional input index so that the
	// last output frame lands exactly on the last input frame.
	ratio := float64(len(src)-1) / float64(maxInt(newLen-1, 1))
	for i := 0; i < newLen; i++ {
		out[i] = lerpStereo(src, float64(i)*ratio)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
