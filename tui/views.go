package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/jroimartin/gocui"

	"github.com/aquinn/chirp8"
)

const (
	screenView    = "screen"
	registersView = "registers"
	disasmView    = "disasm"
	statusView    = "status"

	// +2 for the view frame
	screenPaneW = chirp8.ScreenWidth + 1
	screenPaneH = chirp8.ScreenHeight + 1
)

func (d *Debugger) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(screenView, 0, 0, screenPaneW, screenPaneH); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Screen"
	}

	if v, err := g.SetView(registersView, screenPaneW+1, 0, maxX-1, 8); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Registers"
	}

	if v, err := g.SetView(disasmView, screenPaneW+1, 9, maxX-1, screenPaneH); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Disassembly"
	}

	if v, err := g.SetView(statusView, 0, screenPaneH+1, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		fmt.Fprintln(v, "space: step frame | g: run/halt | b: reset | ctrl-c: quit")
	}

	return nil
}

// redraw runs on the gocui MainLoop goroutine while frameLoop mutates the
// machine on its own; the mutex keeps the two apart. The draw helpers
// expect it to be held.
func (d *Debugger) redraw(g *gocui.Gui) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if v, err := g.View(screenView); err == nil {
		v.Clear()
		d.drawScreen(v)
	}
	if v, err := g.View(registersView); err == nil {
		v.Clear()
		d.drawRegisters(v)
	}
	if v, err := g.View(disasmView); err == nil {
		v.Clear()
		d.drawDisasm(v)
	}

	return nil
}

func (d *Debugger) drawScreen(v io.Writer) {
	var sb strings.Builder
	for y := 0; y < chirp8.ScreenHeight; y++ {
		for x := 0; x < chirp8.ScreenWidth; x++ {
			if d.machine.Pixel(x, y) {
				sb.WriteRune('█')
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	fmt.Fprint(v, sb.String())
}

func (d *Debugger) drawRegisters(v io.Writer) {
	m := d.machine

	for i := 0; i < 8; i++ {
		fmt.Fprintf(v, "V%X=%02X ", i, m.V[i])
	}
	fmt.Fprintln(v)
	for i := 8; i < 16; i++ {
		fmt.Fprintf(v, "V%X=%02X ", i, m.V[i])
	}
	fmt.Fprintln(v)

	fmt.Fprintf(v, "PC=%04X  I=%04X  SP=%02X\n", m.Pc, m.I, m.Sp)
	fmt.Fprintf(v, "DT=%02X  ST=%02X  KEYS=%016b\n", m.Dt, m.St, m.Keypad)

	state := "halted"
	if d.running {
		state = "running"
	}
	fmt.Fprintf(v, "tone=%v  %s\n", m.Tone(), state)
}

func (d *Debugger) drawDisasm(v io.Writer) {
	m := d.machine

	// a few instructions of context either side of PC
	start := int(m.Pc) - 6
	if start < 0 {
		start = 0
	}

	for addr := start; addr <= start+20 && addr <= chirp8.MemorySize-2; addr += 2 {
		marker := "  "
		if uint16(addr) == m.Pc {
			marker = "> "
		}
		fmt.Fprintf(v, "%s%04X  %s\n", marker, addr, m.Disassemble(uint16(addr)))
	}
}
