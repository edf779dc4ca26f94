package wavfile

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	frames := [][2]float32{
		{0, 0},
		{0.5, -0.5},
		{1, -1},
		{-0.25, 0.25},
	}

	data := EncodePCM16(frames, 44100)
	decoded, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.SampleRate != 44100 {
		t.Fatalf("SampleRate = %d, want 44100", decoded.SampleRate)
	}
	if len(decoded.Samples) != len(frames) {
		t.Fatalf("got %d frames, want %d", len(decoded.Samples), len(frames))
	}

	const tol = 1.0 / 32767
	for i, f := range frames {
		got := decoded.Samples[i]
		if absf(got[0]-f[0]) > tol || absf(got[1]-f[1]) > tol {
			t.Errorf("frame %d = %v, want %v", i, got, f)
		}
	}
}

func TestDecodeRejectsNonRIFF(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not a wav file at all")))
	if err == nil {
		t.Fatal("expected an error for non-RIFF input")
	}
}

func TestDecodeMonoDuplicatesChannels(t *testing.T) {
	var buf bytes.Buffer
	// Hand-build a minimal 8-bit mono WAV: 2 frames.
	buf.WriteString("RIFF")
	writeU32(&buf, 36+2)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	writeU32(&buf, 16)
	writeU16(&buf, 1) // PCM
	writeU16(&buf, 1) // mono
	writeU32(&buf, 8000)
	writeU32(&buf, 8000)
	writeU16(&buf, 1)
	writeU16(&buf, 8)
	buf.WriteString("data")
	writeU32(&buf, 2)
	buf.WriteByte(255) // +1.0-ish
	buf.WriteByte(0)   // -1.0-ish

	frames, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(frames.Samples) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames.Samples))
	}
	for i, f := range frames.Samples {
		if f[0] != f[1] {
			t.Errorf("frame %d: mono source wasn't duplicated: %v", i, f)
		}
	}
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func writeU32(buf *bytes.Buffer, v uint32) {
	buf.WriteByte(byte(v))
	buf.WriteByte(byte(v >> 8))
	buf.WriteByte(byte(v >> 16))
	buf.WriteByte(byte(v >> 24))
}

func writeU16(buf *bytes.Buffer, v uint16) {
	buf.WriteByte(byte(v))
	buf.WriteByte(byte(v >> 8))
}
