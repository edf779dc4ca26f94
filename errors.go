package gesturedeck

import "errors"

// EmptyFrame and OutOfRangePosition are deliberately not errors: the
// former is represented by an (Image{}, false) return from a Camera, the
// latter by a normal playing=false transition inside the audio callback.
var (
	// ErrMissingStem is returned by LoadSong when one or more of the four
	// stem files for a song is absent or unreadable. Partial loads are
	// never published to a Deck.
	ErrMissingStem = errors.New("gesturedeck: missing or unreadable stem file")

	// ErrMissingModel signals that the hand-landmark model file required
	// by a LandmarkSource implementation could not be opened.
	ErrMissingModel = errors.New("gesturedeck: missing landmark model")

	// ErrDeviceUnavailable signals that the camera or audio output device
	// could not be acquired at startup. Fatal.
	ErrDeviceUnavailable = errors.New("gesturedeck: device unavailable")
)
