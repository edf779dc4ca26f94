// Command gesturedeck-tui is a live dashboard for the engine: a bubbletea
// program that polls both decks' state on a tick and renders a two-column
// overview, standing in for the overlay HUD when no camera is attached.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

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
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	playStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pauseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	boxStyle    = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())
)

type tickMsg time.Time

// model is the bubbletea Model for the dashboard: it polls deck state on a
// tick, and its only mutation is toggling a deck's play state on a keypress
// (space for left, tab for right). Nothing here blocks on the audio thread.
type model struct {
	left, right *gesturedeck.Deck
	mixer       *gesturedeck.Mixer
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.mixer.Stop()
			return m, tea.Quit
		case " ":
			toggle(m.left)
		case "tab":
			toggle(m.right)
		}
	case tickMsg:
		return m, tickCmd()
	}
	return m, nil
}

func toggle(d *gesturedeck.Deck) {
	if d.IsPlaying() {
		d.Pause()
	} else {
		d.Play()
	}
}

func (m model) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(deckView("LEFT", m.left)),
		boxStyle.Render(deckView("RIGHT", m.right)),
	)
}

func deckView(title string, d *gesturedeck.Deck) string {
	status := pauseStyle.Render("paused")
	if d.IsPlaying() {
		status = playStyle.Render("playing")
	}

	name := "(empty)"
	if s := d.Song(); s != nil {
		name = s.Name
	}

	stems := ""
	for i := 0; i < gesturedeck.StemCount; i++ {
		mark := "mute"
		if d.Gain(i) > 0 {
			mark = "on"
		}
		stems += fmt.Sprintf("%s:%s ", gesturedeck.StemName(i), mark)
	}

	return fmt.Sprintf(
		"%s\n%s %s\n%s %.1fs / %.1fs\n%s %.2f\n%s",
		headerStyle.Render(title),
		labelStyle.Render(name), status,
		labelStyle.Render("pos"), d.Position(), d.Duration(),
		labelStyle.Render("rate"), d.Rate(),
		labelStyle.Render(stems),
	)
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
	if err := mixer.Start(); err != nil {
		log.Fatalf("starting audio stream: %v", gesturedeck.ErrDeviceUnavailable)
	}

	m := model{left: left, right: right, mixer: mixer}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		mixer.Stop()
		log.Fatal(err)
	}
}
