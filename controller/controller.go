// Package controller is the MIDI half of the bridge: it reassembles MIDI
// messages from the wire, schedules the chip's six voices, owns the
// parameter mirror, and runs the front-panel state machine. Every register
// write it decides on leaves through a link.Link.
package controller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/boneycircuitry/megamega2612/link"
	"github.com/boneycircuitry/megamega2612/ym2612"
)

// Display consumes the label/value pair for the current panel selection.
// The terminal UI implements it; headless runs leave it unset.
type Display interface {
	Show(label, value string)
}

// Controller holds all shared state of the MIDI side. The MIDI stream,
// the commit tick, and panel events each arrive on their own goroutine;
// one mutex covers the voice table, the parameter mirror, and the panel
// state so no event sees a half-applied mutation.
type Controller struct {
	mu      sync.Mutex
	link    link.Link
	log     *slog.Logger
	parser  *parser
	params  ym2612.Parameters
	voices  [6]Voice
	panel   panelState
	sustain bool
	display Display
}

// New returns a controller with the configured play settings applied and
// the startup preset already written out, the state the hardware boots in.
func New(l link.Link, log *slog.Logger, cfg Config) *Controller {
	c := &Controller{link: l, log: log}
	c.parser = newParser(c)

	// stored pin levels start at idle, as if read at power-on
	c.panel.encA, c.panel.encB = true, true
	c.panel.btnL, c.panel.btnR = true, true

	c.params.Patch = cfg.Patch
	c.params.VelSens = cfg.VelocitySensitivity
	c.params.MinVel = cfg.MinVelocity
	for _, w := range c.params.ApplyPatch(ym2612.Patches[c.params.Patch]) {
		c.send(w)
	}
	c.changeGroup()
	return c
}

// Run drives the commit tick until ctx is done.
func (c *Controller) Run(ctx context.Context, tick time.Duration) error {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			c.Tick()
		}
	}
}

// HandleMIDIByte consumes one raw MIDI wire byte.
func (c *Controller) HandleMIDIByte(b byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parser.feed(b)
}

// HandlePins consumes one snapshot of the four panel pins.
func (c *Controller) HandlePins(ps PinState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlePins(ps)
}

// Tick commits scheduled voice transitions. Run calls it on the timer;
// it is exported so a host can drive time itself.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick()
}

// AllNotesOff keys every voice off immediately and clears the table.
func (c *Controller) AllNotesOff() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pitchBend()
}

// SetDisplay attaches a display and shows the current selection on it.
func (c *Controller) SetDisplay(d Display) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.display = d
	c.showSelection()
}

// Selection returns the current panel selection as its display pair.
func (c *Controller) Selection() (label, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pr := ym2612.GroupParam(c.panel.group, c.panel.current)
	return c.params.Display(pr, c.panel.op)
}

// Voices returns a snapshot of the voice table.
func (c *Controller) Voices() [6]Voice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.voices
}

// send pushes one register write down the link. The link is fire and
// forget; a failed send is logged and the write is gone.
func (c *Controller) send(w ym2612.Write) {
	if err := c.link.Send(w); err != nil {
		c.log.Warn("link send failed", "reg", w.Reg, "err", err)
	}
}

func (c *Controller) showSelection() {
	if c.display == nil {
		return
	}
	pr := ym2612.GroupParam(c.panel.group, c.panel.current)
	label, value := c.params.Display(pr, c.panel.op)
	c.display.Show(label, value)
}
