// Package config holds the small set of values an operator can tune at
// startup: the stem library root, the optional reverb preset, and the
// tempo slider's rate range. Modeled on modplayer's cmd/internal/config
// package, generalized from a flag-only CLI tool into something both
// harnesses (cmd/gesturedeck-bench and cmd/gesturedeck-tui) share.
package config

import (
	"fmt"

	"github.com/chriskillpack/gesturedeck/internal/comb"
)

// EngineConfig is the full set of values needed to stand up a Mixer and two
// Decks. There are no persisted settings and no CLI flags beyond these
// defaults: every field has a zero-value-safe default.
type EngineConfig struct {
	LibraryRoot string
	Reverb      string // "", "light", "medium", "silly"
	RateMin     float64
	RateMax     float64
}

// Default returns the engine's out-of-the-box configuration: reverb off,
// tempo slider mapped to [0.5, 1.5].
func Default(libraryRoot string) EngineConfig {
	return EngineConfig{
		LibraryRoot: libraryRoot,
		RateMin:     0.5,
		RateMax:     1.5,
	}
}

// ReverbFromPreset builds a comb.Reverber for the named preset, or nil for
// "" (no effect bus - the Mixer skips the int16 round trip entirely when
// Reverb is nil). An unrecognized preset is an error.
func ReverbFromPreset(preset string, sampleRate int) (comb.Reverber, error) {
	const bufSize = 1 << 16

	switch preset {
	case "":
		return nil, nil
	case "light":
		return comb.NewStereoReverb(bufSize, 0.2, 0.15, 0.2, sampleRate), nil
	case "medium":
		return comb.NewStereoReverb(bufSize, 0.3, 0.25, 0.35, sampleRate), nil
	case "silly":
		return comb.NewStereoReverb(bufSize, 0.6, 0.4, 0.6, sampleRate), nil
	default:
		return nil, fmt.Errorf("config: unknown reverb preset %q", preset)
	}
}
