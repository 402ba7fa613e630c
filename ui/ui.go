// Package ui is the terminal front panel. It stands in for the hardware
// encoder, buttons, and LCD: key presses are replayed as the exact pin
// transitions the panel would produce, and the display line the controller
// pushes is polled back into the view.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/boneycircuitry/megamega2612/controller"
)

type keyMap struct {
	ValueUp   key.Binding
	ValueDown key.Binding
	NextParam key.Binding
	PrevParam key.Binding
	NextOp    key.Binding
	PrevOp    key.Binding
	NextGroup key.Binding
	PrevGroup key.Binding
	Panic     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ValueUp:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "value +")),
		ValueDown: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "value -")),
		NextParam: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next param")),
		PrevParam: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "prev param")),
		NextOp:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next op")),
		PrevOp:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev op")),
		NextGroup: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next group")),
		PrevGroup: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("s-tab", "prev group")),
		Panic:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "all notes off")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ValueDown, k.ValueUp, k.PrevParam, k.NextParam, k.NextGroup, k.Panic, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ValueDown, k.ValueUp, k.PrevParam, k.NextParam},
		{k.PrevOp, k.NextOp, k.PrevGroup, k.NextGroup},
		{k.Panic, k.Quit},
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	onStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	freeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

func pollTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model over a running controller.
type Model struct {
	c      *controller.Controller
	screen *Screen
	keys   keyMap
	help   help.Model
	label  string
	value  string
	voices [6]controller.Voice
}

// New wires a model to the controller and registers itself as the display.
func New(c *controller.Controller) Model {
	m := Model{c: c, screen: &Screen{}, keys: defaultKeyMap(), help: help.New()}
	c.SetDisplay(m.screen)
	m.label, m.value = m.screen.Line()
	return m
}

func (m Model) Init() tea.Cmd { return pollTick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Panic):
			m.c.AllNotesOff()
		case key.Matches(msg, m.keys.ValueUp):
			m.turn(true, false, false)
		case key.Matches(msg, m.keys.ValueDown):
			m.turn(false, false, false)
		case key.Matches(msg, m.keys.NextParam):
			m.turn(true, true, false)
		case key.Matches(msg, m.keys.PrevParam):
			m.turn(false, true, false)
		case key.Matches(msg, m.keys.NextOp):
			m.turn(true, false, true)
		case key.Matches(msg, m.keys.PrevOp):
			m.turn(false, false, true)
		case key.Matches(msg, m.keys.NextGroup):
			m.press(false)
		case key.Matches(msg, m.keys.PrevGroup):
			m.press(true)
		}
		m.label, m.value = m.screen.Line()

	case tickMsg:
		m.label, m.value = m.screen.Line()
		m.voices = m.c.Voices()
		return m, pollTick()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

// turn replays the transitions of one encoder detent and ends at idle.
// A held button reads low through the turn and releases after it; the
// turn disarms the group latch, so the release never steps the group.
func (m Model) turn(cw, holdL, holdR bool) {
	pins := controller.PinState{EncA: true, EncB: true, BtnL: !holdL, BtnR: !holdR}
	if cw {
		pins.EncA = false
		m.c.HandlePins(pins)
		pins.EncA = true
		m.c.HandlePins(pins)
	} else {
		pins.EncA, pins.EncB = false, false
		m.c.HandlePins(pins)
		pins.EncB = true
		m.c.HandlePins(pins)
		pins.EncA = true
		m.c.HandlePins(pins)
	}
	pins.BtnL, pins.BtnR = true, true
	m.c.HandlePins(pins)
}

// press taps a group button, press then release.
func (m Model) press(left bool) {
	pins := controller.PinState{EncA: true, EncB: true, BtnL: true, BtnR: true}
	if left {
		pins.BtnL = false
	} else {
		pins.BtnR = false
	}
	m.c.HandlePins(pins)
	pins.BtnL, pins.BtnR = true, true
	m.c.HandlePins(pins)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("megamega2612") + "\n\n")

	b.WriteString(labelStyle.Render(m.label))
	if m.value != "" {
		b.WriteString("  " + m.value)
	}
	b.WriteString("\n\n")

	b.WriteString("voices ")
	for _, v := range m.voices {
		cell := fmt.Sprintf("%-5s", "--")
		switch {
		case v.On:
			cell = onStyle.Render(fmt.Sprintf("%-5s", noteName(v.Note)))
		case v.Scheduled:
			cell = fmt.Sprintf("%-5s", noteName(v.Note))
		default:
			cell = freeStyle.Render(cell)
		}
		b.WriteString(cell)
	}
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// noteName formats a MIDI note number as pitch class and octave,
// middle C (60) as C4.
func noteName(note uint8) string {
	return fmt.Sprintf("%s%d", noteNames[note%12], int(note)/12-1)
}

// Run drives the terminal interface until the user quits.
func Run(c *controller.Controller) error {
	p := tea.NewProgram(New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
