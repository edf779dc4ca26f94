// Command gesturedeck-bench is a keyboard-driven operator harness for the
// engine: it exercises both decks and the mixer without a camera or hand
// model attached, standing in for the gesture-driven control surface so the
// audio path can be bench-tested from a terminal (mirroring modplayer's
// cmd/modplay harness).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/fatih/color"

	"github.com/chriskillpack/gesturedeck"
	"github.com/chriskillpack/gesturedeck/internal/config"
)

var (
	flagLibrary = flag.String("library", "./library", "stem library root")
	flagLeft    = flag.String("left", "", "song name to preload on the left deck")
	flagRight   = flag.String("right", "", "song name to preload on the right deck")
	flagReverb  = flag.String("reverb", "", "reverb preset: \"\", light, medium, silly")
)

var (
	cyan   = color.New(color.FgCyan).SprintfFunc()
	yellow = color.New(color.FgYellow).SprintfFunc()
	green  = color.New(color.FgGreen).SprintfFunc()
	white  = color.New(color.FgWhite).SprintfFunc()
)

const (
	escape     = "\x1b["
	hideCursor = escape + "?25l"
	showCursor = escape + "?25h"
	clearLine  = escape + "2K\r"
)

// bench wires two decks and a mixer and drives them from single keystrokes,
// playing the role the pinch/grab widgets play in the real engine.
type bench struct {
	left, right *gesturedeck.Deck
	mixer       *gesturedeck.Mixer
	focus       gesturedeck.Side

	ctx            context.Context
	cancelFn       context.CancelFunc
	wg             sync.WaitGroup
	stopOnce       sync.Once
	keyboardDoneCh chan struct{}
}

func main() {
	flag.Parse()

	left := gesturedeck.NewDeck(gesturedeck.Left)
	right := gesturedeck.NewDeck(gesturedeck.Right)

	if *flagLeft != "" {
		if err := left.Select(*flagLibrary, *flagLeft); err != nil {
			log.Fatalf("select left deck: %v", err)
		}
	}
	if *flagRight != "" {
		if err := right.Select(*flagLibrary, *flagRight); err != nil {
			log.Fatalf("select right deck: %v", err)
		}
	}

	reverb, err := config.ReverbFromPreset(*flagReverb, gesturedeck.SampleRate)
	if err != nil {
		log.Fatalf("reverb preset: %v", err)
	}

	mixer := gesturedeck.NewMixer(left, right)
	mixer.Reverb = reverb

	ctx, cancel := context.WithCancel(context.Background())
	b := &bench{
		left:           left,
		right:          right,
		mixer:          mixer,
		focus:          gesturedeck.Left,
		ctx:            ctx,
		cancelFn:       cancel,
		keyboardDoneCh: make(chan struct{}),
	}

	if err := b.run(); err != nil {
		log.Fatal(err)
	}
}

func (b *bench) run() error {
	if err := b.mixer.Start(); err != nil {
		return fmt.Errorf("starting audio stream: %w", gesturedeck.ErrDeviceUnavailable)
	}

	b.setupSignalHandlers()
	b.setupKeyboardHandlers()

	fmt.Fprint(os.Stdout, hideCursor)
	defer fmt.Fprint(os.Stdout, showCursor)

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-b.ctx.Done():
			b.waitKeyboardDone()
			b.wg.Wait()
			return nil
		case <-ticker.C:
			b.render()
		}
	}
}

func (b *bench) deckFor(side gesturedeck.Side) *gesturedeck.Deck {
	if side == gesturedeck.Left {
		return b.left
	}
	return b.right
}

func (b *bench) render() {
	d := b.deckFor(b.focus)
	fmt.Fprint(os.Stdout, clearLine)
	status := "paused"
	if d.IsPlaying() {
		status = "playing"
	}
	fmt.Fprintf(os.Stdout, "%s deck=%s %s pos=%.1fs/%.1fs rate=%s",
		cyan("[bench]"), white(b.focus.String()), green(status), d.Position(), d.Duration(), yellow("%.2f", d.Rate()))
}

func (b *bench) setupSignalHandlers() {
	sigch := make(chan os.Signal, 5)
	signal.Notify(sigch, syscall.SIGINT)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		select {
		case <-b.ctx.Done():
		case <-sigch:
			b.stop()
		}
	}()
}

func (b *bench) setupKeyboardHandlers() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		keyboard.Listen(func(key keys.Key) (stop bool, err error) {
			if key.Code == keys.CtrlC || key.Code == keys.Escape {
				b.stop()
				return true, nil
			}
			b.handleKeyPress(key)
			return false, nil
		})
		close(b.keyboardDoneCh)
	}()
}

func (b *bench) waitKeyboardDone() {
	select {
	case <-b.keyboardDoneCh:
	case <-time.After(500 * time.Millisecond):
	}
}

func (b *bench) handleKeyPress(key keys.Key) {
	d := b.deckFor(b.focus)

	if key.Code == keys.Space {
		if d.IsPlaying() {
			d.Pause()
		} else {
			d.Play()
		}
		return
	}
	if key.Code != keys.RuneKey || len(key.Runes) == 0 {
		return
	}

	switch key.Runes[0] {
	case 'f':
		if b.focus == gesturedeck.Left {
			b.focus = gesturedeck.Right
		} else {
			b.focus = gesturedeck.Left
		}
	case 'c':
		d.Cue()
	case '[':
		d.SetRate(maxFloat(d.Rate()-0.05, 0))
	case ']':
		d.SetRate(d.Rate() + 0.05)
	case '1', '2', '3', '4':
		stem := int(key.Runes[0] - '1')
		if d.Gain(stem) > 0 {
			d.Mute(stem)
		} else {
			d.Unmute(stem)
		}
	case 'y':
		gesturedeck.ApplyBPMSync(b.left, b.right)
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func (b *bench) stop() {
	b.stopOnce.Do(func() {
		b.left.Pause()
		b.right.Pause()
		b.cancelFn()
		b.mixer.Stop()
	})
}
