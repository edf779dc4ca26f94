package gesturedeck

import (
	"math"
	"sync/atomic"
)

// Deck holds one side's loaded Song behind an atomic pointer so the audio
// callback always sees either the previous song or the newly selected one,
// never a torn mix. playing, rate, position and the per-stem gains are
// themselves atomics so the control thread (widgets) and the audio thread
// never contend a lock.
type Deck struct {
	side Side

	song atomic.Pointer[Song]

	playing      atomic.Bool
	rateBits     atomic.Uint64
	positionBits atomic.Uint64
	gainBits     [StemCount]atomic.Uint64

	soloed       atomic.Bool
	soloSnapshot [StemCount]uint64
}

// DeckState is a point-in-time, allocation-free snapshot of a Deck for
// display harnesses. Building it only reads the audio-path fields, never
// writes them.
type DeckState struct {
	Side     Side
	Playing  bool
	Position float64
	Duration float64
	Rate     float64
	Gains    [StemCount]float64
	Song     string
}

// State returns a DeckState snapshot. Each field is read independently via
// its own atomic load, so the snapshot can be a buffer-period stale
// relative to itself under concurrent mutation - acceptable for a display,
// never read back into the audio path.
func (d *Deck) State() DeckState {
	s := DeckState{
		Side:     d.side,
		Playing:  d.playing.Load(),
		Position: d.Position(),
		Duration: d.Duration(),
		Rate:     d.Rate(),
	}
	for i := range s.Gains {
		s.Gains[i] = d.Gain(i)
	}
	if song := d.song.Load(); song != nil {
		s.Song = song.Name
	}
	return s
}

// NewDeck returns an empty, paused Deck at native rate with every stem
// unmuted.
func NewDeck(side Side) *Deck {
	d := &Deck{side: side}
	d.rateBits.Store(math.Float64bits(1.0))
	for i := range d.gainBits {
		d.gainBits[i].Store(math.Float64bits(1.0))
	}
	return d
}

func (d *Deck) Side() Side { return d.side }

// Select loads songName from root and publishes it atomically, pausing
// and resetting the playhead. Existing gains and rate are left
// untouched so an operator's mute/tempo choices survive a reselect.
func (d *Deck) Select(root, songName string) error {
	song, err := LoadSong(root, songName)
	if err != nil {
		return err
	}
	d.playing.Store(false)
	d.positionBits.Store(0)
	d.song.Store(song)
	return nil
}

// Song returns the currently loaded song, or nil if none has been selected.
func (d *Deck) Song() *Song { return d.song.Load() }

func (d *Deck) Play()  { d.playing.Store(true) }
func (d *Deck) Pause() { d.playing.Store(false) }

func (d *Deck) IsPlaying() bool { return d.playing.Load() }

// Cue resets the playhead to zero and pauses.
func (d *Deck) Cue() {
	d.positionBits.Store(0)
	d.playing.Store(false)
}

// SetRate clamps r to [0, +Inf) and stores it. rate=0 freezes the playhead
// in place and the deck contributes silence; rate=1 is native speed; the mixer's linear interpolation makes any
// other value a pitch-bending scratch/nudge.
func (d *Deck) SetRate(r float64) {
	if r < 0 {
		r = 0
	}
	d.rateBits.Store(math.Float64bits(r))
}

func (d *Deck) Rate() float64 { return math.Float64frombits(d.rateBits.Load()) }

// Mute and Unmute set a stem's gain to 0 or 1. Intermediate gains are
// supported by the field but unused by the current widget set.
func (d *Deck) Mute(stem int) {
	if stem < 0 || stem >= StemCount {
		return
	}
	d.gainBits[stem].Store(math.Float64bits(0))
}

func (d *Deck) Unmute(stem int) {
	if stem < 0 || stem >= StemCount {
		return
	}
	d.gainBits[stem].Store(math.Float64bits(1))
}

// Solo mutes every stem except stem and remembers the prior gain set so
// ClearSolo can restore it, expressed in terms of the existing gains array
// plus the snapshot and a flag marking a solo as active.
func (d *Deck) Solo(stem int) {
	if stem < 0 || stem >= StemCount {
		return
	}
	for i := 0; i < StemCount; i++ {
		prev := d.gainBits[i].Load()
		d.soloSnapshot[i] = prev
		if i == stem {
			d.gainBits[i].Store(math.Float64bits(1))
		} else {
			d.gainBits[i].Store(math.Float64bits(0))
		}
	}
	d.soloed.Store(true)
}

// ClearSolo restores the gains captured by the most recent Solo call; a
// no-op if no solo is active.
func (d *Deck) ClearSolo() {
	if !d.soloed.CompareAndSwap(true, false) {
		return
	}
	for i := 0; i < StemCount; i++ {
		d.gainBits[i].Store(d.soloSnapshot[i])
	}
}

func (d *Deck) Gain(stem int) float64 {
	if stem < 0 || stem >= StemCount {
		return 0
	}
	return math.Float64frombits(d.gainBits[stem].Load())
}

// Seek advances the playhead by ds seconds-equivalent of samples (ds*sr),
// clamped to [0, maxLen-1]. ds may be negative (platter reverse rotation).
func (d *Deck) Seek(ds float64) {
	song := d.song.Load()
	maxLen := song.maxLen()
	if maxLen == 0 {
		return
	}

	for {
		old := d.positionBits.Load()
		pos := math.Float64frombits(old)
		newPos := pos + ds*SampleRate
		if newPos < 0 {
			newPos = 0
		}
		if ceiling := float64(maxLen - 1); newPos > ceiling {
			newPos = ceiling
		}
		if d.positionBits.CompareAndSwap(old, math.Float64bits(newPos)) {
			return
		}
	}
}

// Position returns the playhead in seconds.
func (d *Deck) Position() float64 {
	return math.Float64frombits(d.positionBits.Load()) / SampleRate
}

// Duration returns the song's longest stem length in seconds, or 0 if no
// song is loaded.
func (d *Deck) Duration() float64 {
	return float64(d.song.Load().maxLen()) / SampleRate
}

// Contribute is the sample assembly step, invoked once per output
// buffer by the Mixer's audio callback. It adds this deck's mix into out
// (which the caller has already zeroed); it never allocates and never
// blocks, so it is safe to call directly from a realtime audio callback.
func (d *Deck) Contribute(out [][2]float32) {
	if !d.playing.Load() {
		return
	}
	song := d.song.Load()
	if song == nil {
		return
	}
	maxLen := song.maxLen()
	if maxLen == 0 {
		d.playing.Store(false)
		return
	}

	pos := math.Float64frombits(d.positionBits.Load())
	rate := math.Float64frombits(d.rateBits.Load())
	if pos >= float64(maxLen) {
		d.playing.Store(false)
		return
	}
	if rate == 0 {
		// A frozen playhead contributes silence.
		return
	}

	var gains [StemCount]float32
	for i := range gains {
		gains[i] = float32(math.Float64frombits(d.gainBits[i].Load()))
	}

	frames := len(out)
	k := 0
	for ; k < frames; k++ {
		readPos := pos + float64(k)*rate
		if readPos >= float64(maxLen) {
			break
		}

		var l, r float32
		for s := 0; s < StemCount; s++ {
			if gains[s] == 0 {
				continue
			}
			stem := song.Stems[s]
			if len(stem) == 0 {
				continue
			}
			clamped := readPos
			if clamped < 0 {
				clamped = 0
			}
			if clamped > float64(len(stem)-1) {
				clamped = float64(len(stem) - 1)
			}
			if int(clamped) >= len(stem) {
				continue
			}
			sample := lerpStereo(stem, clamped)
			l += sample[0] * gains[s]
			r += sample[1] * gains[s]
		}
		out[k][0] += l
		out[k][1] += r
	}

	d.positionBits.Store(math.Float64bits(pos + float64(frames)*rate))
}
