// Package tui is a gocui debugger console: live screen, register and
// disassembly panes with run/halt/frame-step control.
package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/retroenv/retrogolib/log"

	"github.com/aquinn/chirp8"
)

// keyHoldFor mirrors the terminal frontend: a terminal reports presses
// only, so each press decays after a short hold.
const keyHoldFor = 150 * time.Millisecond

// Debugger drives a machine frame by frame under a gocui interface.
//
// Controls: space steps one frame, 'g' toggles run/halt, 'b' resets,
// Ctrl-C quits. The 1234/qwer/asdf/zxcv block feeds the CHIP-8 keypad.
type Debugger struct {
	machine *chirp8.Machine
	logger  *log.Logger

	mu      sync.Mutex
	running bool
	held    [16]time.Time
}

func New(machine *chirp8.Machine, logger *log.Logger) *Debugger {
	return &Debugger{
		machine: machine,
		logger:  logger,
	}
}

// Run opens the interface and blocks until the user quits.
func (d *Debugger) Run() error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("creating gui: %w", err)
	}
	defer g.Close()

	g.SetManagerFunc(d.layout)

	if err := d.bindKeys(g); err != nil {
		return fmt.Errorf("binding keys: %w", err)
	}

	go d.frameLoop(g)

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}

	return nil
}

func (d *Debugger) bindKeys(g *gocui.Gui) error {
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		return err
	}
	if err := g.SetKeybinding("", gocui.KeySpace, gocui.ModNone, d.step); err != nil {
		return err
	}
	if err := g.SetKeybinding("", 'g', gocui.ModNone, d.toggle); err != nil {
		return err
	}
	if err := g.SetKeybinding("", 'b', gocui.ModNone, d.reset); err != nil {
		return err
	}

	// the keypad block; keys decay on their own, see keyHoldFor
	for r, k := range chirp8.DefaultKeyboardLayout {
		key := k
		if err := g.SetKeybinding("", r, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
			d.mu.Lock()
			d.held[key] = time.Now()
			d.mu.Unlock()
			return nil
		}); err != nil {
			return err
		}
	}

	return nil
}

// frameLoop ticks at the display rate and runs a frame whenever the
// machine is in the running state. All view writes go through g.Update.
func (d *Debugger) frameLoop(g *gocui.Gui) {
	tick := time.NewTicker(time.Second / chirp8.FramesPerSecond)
	defer tick.Stop()

	for range tick.C {
		if d.isRunning() {
			d.frame()
		}
		g.Update(d.redraw)
	}
}

// frame runs one machine frame. The mutex serializes it against redraw
// reads on the MainLoop goroutine and against the reset keybinding; the
// keypad mask is sampled before taking the lock since mask locks itself.
func (d *Debugger) frame() {
	mask := d.mask()

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.machine.RunFrame(mask); err != nil {
		d.running = false
		d.logger.Error("frame aborted", log.Err(err), log.Hex("pc", d.machine.Pc))
	}
}

func (d *Debugger) mask() uint16 {
	now := time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()

	var mask uint16
	for k, pressed := range d.held {
		if !pressed.IsZero() && now.Sub(pressed) < keyHoldFor {
			mask |= 1 << k
		}
	}

	return mask
}

func (d *Debugger) isRunning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.running
}

func (d *Debugger) setRunning(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.running = on
}

func (d *Debugger) step(g *gocui.Gui, v *gocui.View) error {
	if !d.isRunning() {
		d.frame()
	}

	return nil
}

func (d *Debugger) toggle(g *gocui.Gui, v *gocui.View) error {
	d.setRunning(!d.isRunning())

	return nil
}

func (d *Debugger) reset(g *gocui.Gui, v *gocui.View) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.running = false
	d.machine.Reset()

	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
