// Package wavfile is a minimal WAV (RIFF/PCM) codec: just enough to read
// the stem audio files the library loader expects and to write fixtures in
// tests, supporting 16-bit PCM, 8-bit PCM, and IEEE float samples.
package wavfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	fmtPCM   = 1
	fmtFloat = 3
)

// ErrUnsupportedFormat is returned by Decode for WAV files that aren't
// 8-bit PCM, 16-bit PCM or 32-bit IEEE float.
var ErrUnsupportedFormat = errors.New("wavfile: unsupported sample format")

// Frames holds decoded audio as deinterleaved stereo float32 sample pairs,
// one [2]float32{left, right} per frame.
type Frames struct {
	SampleRate int
	Samples    [][2]float32
}

type fmtChunk struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// Decode parses a RIFF/WAVE byte stream into stereo float32 frames. Mono
// input is duplicated into both channels.
func Decode(r io.Reader) (*Frames, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("wavfile: not a RIFF/WAVE file")
	}

	var fc fmtChunk
	var pcm []byte
	haveFmt := false

	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		if body+size > len(data) {
			size = len(data) - body
		}

		switch id {
		case "fmt ":
			if err := binary.Read(bytes.NewReader(data[body:body+size]), binary.LittleEndian, &fc); err != nil {
				return nil, err
			}
			haveFmt = true
		case "data":
			pcm = data[body : body+size]
		}

		pos = body + size
		if size%2 == 1 {
			pos++ // chunks are word-aligned
		}
	}

	if !haveFmt || pcm == nil {
		return nil, fmt.Errorf("wavfile: missing fmt or data chunk")
	}
	pcmOK := fc.AudioFormat == fmtPCM && (fc.BitsPerSample == 8 || fc.BitsPerSample == 16)
	floatOK := fc.AudioFormat == fmtFloat && fc.BitsPerSample == 32
	if !pcmOK && !floatOK {
		return nil, ErrUnsupportedFormat
	}

	bytesPerSample := int(fc.BitsPerSample) / 8
	channels := int(fc.NumChannels)
	if channels < 1 {
		return nil, fmt.Errorf("wavfile: invalid channel count %d", channels)
	}
	frameBytes := bytesPerSample * channels
	if frameBytes == 0 {
		return nil, fmt.Errorf("wavfile: invalid block size")
	}
	numFrames := len(pcm) / frameBytes

	out := &Frames{SampleRate: int(fc.SampleRate), Samples: make([][2]float32, numFrames)}
	for i := 0; i < numFrames; i++ {
		base := i * frameBytes
		l := decodeSample(pcm[base:base+bytesPerSample], fc.AudioFormat, int(fc.BitsPerSample))
		r := l
		if channels > 1 {
			roff := base + bytesPerSample
			r = decodeSample(pcm[roff:roff+bytesPerSample], fc.AudioFormat, int(fc.BitsPerSample))
		}
		out.Samples[i] = [2]float32{l, r}
	}

	return out, nil
}

func decodeSample(b []byte, format uint16, bits int) float32 {
	if format == fmtFloat && bits == 32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	}
	switch bits {
	case 16:
		v := int16(binary.LittleEndian.Uint16(b))
		return float32(v) / 32768.0
	case 8:
		return (float32(b[0]) - 128) / 128.0
	default:
		return 0
	}
}

// EncodePCM16 writes stereo frames as a 16-bit PCM WAV file, used to build
// fixtures in tests.
func EncodePCM16(frames [][2]float32, sampleRate int) []byte {
	var buf bytes.Buffer

	dataSize := len(frames) * 4 // 2 channels * 2 bytes
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, fmtChunk{
		AudioFormat:   fmtPCM,
		NumChannels:   2,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * 4),
		BlockAlign:    4,
		BitsPerSample: 16,
	})

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	for _, f := range frames {
		binary.Write(&buf, binary.LittleEndian, toInt16(f[0]))
		binary.Write(&buf, binary.LittleEndian, toInt16(f[1]))
	}

	return buf.Bytes()
}

func toInt16(s float32) int16 {
	if s > 1 {
		s = 1
	}
	if s < -1 {
		s = -1
	}
	return int16(s * 32767)
}
