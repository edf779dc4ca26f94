package gesturedeck

import (
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/chriskillpack/gesturedeck/internal/comb"
)

// DefaultBufferFrames is the stereo frame count requested per audio
// callback when a Mixer doesn't ask PortAudio for device-chosen buffering.
const DefaultBufferFrames = 512

// Mixer opens a stereo float32 PortAudio output stream and, on every
// callback, zeroes its working buffer and asks each Deck to add its
// contribution. The callback never allocates once
// mixBuf/effectIn/effectOut have been sized by the first invocation,
// never blocks, and never contends a lock - Deck state is entirely
// atomics (see deck.go).
type Mixer struct {
	Left, Right *Deck

	// Reverb is an optional post-mix effect bus. Nil (the default) means
	// the callback writes the raw deck mix straight to the device,
	// keeping zero output and impulse reproduction exact without a
	// quantization detour through Reverber's int16 domain. Set it to a
	// *comb.StereoReverb to opt in.
	Reverb comb.Reverber

	stream *portaudio.Stream

	mixBuf    [][2]float32
	effectIn  []int16
	effectOut []int16

	stopOnce sync.Once
}

// NewMixer wires two decks into a Mixer with no effect bus.
func NewMixer(left, right *Deck) *Mixer {
	return &Mixer{Left: left, Right: right}
}

// Start initializes PortAudio, opens the default output device at
// SampleRate, 2 channels, float32, and begins the stream. It returns
// ErrDeviceUnavailable wrapping the underlying PortAudio error if the
// device cannot be acquired.
func (m *Mixer) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return &deviceError{err}
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, float64(SampleRate), DefaultBufferFrames, m.streamCallback)
	if err != nil {
		portaudio.Terminate()
		return &deviceError{err}
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return &deviceError{err}
	}
	m.stream = stream
	return nil
}

// Stop idempotently stops and closes the audio stream and terminates
// PortAudio. It tolerates being called multiple times and tolerates the
// callback firing up to the moment the underlying Stop call returns.
func (m *Mixer) Stop() {
	m.stopOnce.Do(func() {
		if m.stream != nil {
			m.stream.Stop()
			m.stream.Close()
		}
		portaudio.Terminate()
	})
}

// streamCallback is invoked by PortAudio on the audio thread. out is
// interleaved stereo float32.
func (m *Mixer) streamCallback(out []float32) {
	frames := len(out) / 2
	if cap(m.mixBuf) < frames {
		// Only grows on the first call or a device buffer-size change;
		// steady-state operation never reaches here.
		m.mixBuf = make([][2]float32, frames)
	}
	mix := m.mixBuf[:frames]
	for i := range mix {
		mix[i] = [2]float32{}
	}

	m.Left.Contribute(mix)
	m.Right.Contribute(mix)

	if m.Reverb == nil {
		for i, s := range mix {
			out[2*i] = s[0]
			out[2*i+1] = s[1]
		}
		return
	}

	m.runEffect(mix, out)
}

// runEffect bridges the Mixer's float32 domain to Reverber's int16 domain:
// it converts, pushes through the effect, drains what's ready, and converts
// back. Any samples the effect can't return this callback (buffer still
// filling) are left as silence; underruns are never compensated for.
func (m *Mixer) runEffect(mix [][2]float32, out []float32) {
	n := len(mix)
	if cap(m.effectIn) < n*2 {
		m.effectIn = make([]int16, n*2)
		m.effectOut = make([]int16, n*2)
	}
	in := m.effectIn[:n*2]
	eOut := m.effectOut[:n*2]

	for i, s := range mix {
		in[2*i] = floatToInt16(s[0])
		in[2*i+1] = floatToInt16(s[1])
	}

	m.Reverb.InputSamples(in)
	got := m.Reverb.GetAudio(eOut)

	for i := 0; i < len(out); i++ {
		out[i] = 0
	}
	for i := 0; i < got; i++ {
		out[i] = int16ToFloat(eOut[i])
	}
}

func floatToInt16(f float32) int16 {
	if f > 1 {
		f = 1
	}
	if f < -1 {
		f = -1
	}
	return int16(f * 32767)
}

func int16ToFloat(s int16) float32 {
	return float32(s) / 32768.0
}

type deviceError struct{ err error }

func (e *deviceError) Error() string { return "gesturedeck: " + e.err.Error() }
func (e *deviceError) Unwrap() error { return e.err }
func (e *deviceError) Is(target error) bool { return target == ErrDeviceUnavailable }
