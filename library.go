package gesturedeck

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chriskillpack/gesturedeck/internal/wavfile"
)

// stemFileNames is the fixed on-disk filename for each stem index, read
// from <root>/<song>/.
var stemFileNames = [StemCount]string{"bass.wav", "drums.wav", "other.wav", "vocals.wav"}

// Song is an immutable, fully-loaded set of stem buffers plus metadata. A
// Deck holds a *Song behind an atomic pointer so select() can publish a new
// one without the audio callback ever observing a torn mix of old and new
// stems.
type Song struct {
	Name    string
	Stems   [StemCount][][2]float32
	BPM     float64
	Summary []float32
}

// maxLen returns the length in frames of the song's longest stem.
func (s *Song) maxLen() int {
	if s == nil {
		return 0
	}
	max := 0
	for _, stem := range s.Stems {
		if len(stem) > max {
			max = len(stem)
		}
	}
	return max
}

// LoadSong reads the four stem WAV files for songName under root, reads
// bpm.txt if present, and builds the waveform summary. It fails with
// ErrMissingStem if any stem file is absent or unreadable; no partial Song
// is ever returned.
func LoadSong(root, songName string) (*Song, error) {
	dir := filepath.Join(root, songName)

	song := &Song{Name: songName, BPM: DefaultBPM}
	for i, fname := range stemFileNames {
		f, err := os.Open(filepath.Join(dir, fname))
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %v", ErrMissingStem, songName, fname, err)
		}
		frames, err := wavfile.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %v", ErrMissingStem, songName, fname, err)
		}
		song.Stems[i] = frames.Samples
	}

	if bpm, ok := readBPM(filepath.Join(dir, "bpm.txt")); ok {
		song.BPM = bpm
	}

	song.Summary = buildWaveformSummary(song.Stems)
	return song, nil
}

// readBPM parses a bpm.txt containing a single floating-point number.
// Absence or a parse failure is not an error: the caller falls back to
// DefaultBPM.
func readBPM(path string) (float64, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	bpm, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil || bpm <= 0 {
		return 0, false
	}
	return bpm, true
}
