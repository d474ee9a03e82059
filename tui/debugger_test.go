package tui

import (
	"strings"
	"sync"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"

	"github.com/aquinn/chirp8"
)

func testDebugger(t *testing.T) *Debugger {
	t.Helper()

	m := chirp8.New(1)
	assert.NoError(t, m.LoadProgram([]byte{0x12, 0x00})) // JP 0x200

	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel

	return New(m, log.NewWithConfig(cfg))
}

func TestFramesSerializeWithReadsAndReset(t *testing.T) {
	d := testDebugger(t)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			d.frame()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = d.reset(nil, nil)
		}
	}()
	// the view reads of the MainLoop goroutine, locked as redraw locks
	go func() {
		defer wg.Done()
		var sb strings.Builder
		for i := 0; i < 50; i++ {
			d.mu.Lock()
			d.drawScreen(&sb)
			d.drawRegisters(&sb)
			d.drawDisasm(&sb)
			d.mu.Unlock()
			sb.Reset()
		}
	}()
	wg.Wait()

	// the program is a jump-to-self, so Pc ends at the start no matter
	// how frames and resets interleaved
	assert.Equal(t, uint16(chirp8.ProgramStart), d.machine.Pc)
}

func TestStepOnlyWhileHalted(t *testing.T) {
	d := testDebugger(t)

	var frames int
	d.machine.AddBeforeFrameHook(func(*chirp8.Machine) { frames++ })

	assert.NoError(t, d.step(nil, nil))
	assert.Equal(t, 1, frames)

	assert.NoError(t, d.toggle(nil, nil))
	assert.True(t, d.isRunning())
	assert.NoError(t, d.step(nil, nil))
	assert.Equal(t, 1, frames)
}

func TestRegisterPaneContents(t *testing.T) {
	d := testDebugger(t)
	d.machine.V[3] = 0x42

	var sb strings.Builder
	d.mu.Lock()
	d.drawRegisters(&sb)
	d.mu.Unlock()

	assert.True(t, strings.Contains(sb.String(), "V3=42"))
	assert.True(t, strings.Contains(sb.String(), "PC=0200"))
	assert.True(t, strings.Contains(sb.String(), "halted"))
}
