package chirp8_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"

	"github.com/aquinn/chirp8"
)

func testConsole(t *testing.T, program ...byte) (*chirp8.Console, *chirp8.InMemoryDisplay, *chirp8.InMemoryKeyboard, *chirp8.InMemoryBuzzer) {
	t.Helper()

	m := loaded(t, program...)
	d := chirp8.NewInMemoryDisplay()
	kb := chirp8.NewInMemoryKeyboard()
	bz := chirp8.NewInMemoryBuzzer()

	return chirp8.NewConsole(m, d, kb, bz), d, kb, bz
}

func TestConsoleFrame(t *testing.T) {
	c, d, kb, bz := testConsole(t,
		0xA0, 0x00, // LD I, 0x000
		0x60, 0x00, // LD V0, 0
		0xD0, 0x05, // DRW V0, V0, 5: the "0" glyph at the origin
		0x61, 0x3C, // LD V1, 60
		0xF1, 0x18, // LD ST, V1
		0x12, 0x0A, // JP 0x20A
	)
	kb.Press(0x5)

	assert.NoError(t, c.Frame())

	// the glyph reached the display
	assert.Equal(t, byte(0xF0), d.Last[0])
	assert.Equal(t, byte(0x90), d.Last[8])
	// the keypad was sampled into the machine
	assert.Equal(t, chirp8.KeyMask(0x5), c.M.Keypad)
	// the sound timer was set mid-frame, so the tone starts one frame later
	assert.False(t, bz.Playing)

	assert.NoError(t, c.Frame())
	assert.True(t, bz.Playing)
}

func TestConsoleFrameError(t *testing.T) {
	c, _, _, _ := testConsole(t, 0xFF, 0xFF)

	var opErr chirp8.ErrInvalidOp
	assert.True(t, errors.As(c.Frame(), &opErr))
}

func TestConsoleRunStopsOnCancel(t *testing.T) {
	c, _, _, _ := testConsole(t, 0x12, 0x00) // JP 0x200

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("console did not stop")
	}
}

func TestConsoleFrameSerialized(t *testing.T) {
	c, _, _, _ := testConsole(t, 0x12, 0x00) // JP 0x200

	var frames int
	c.M.AddBeforeFrameHook(func(*chirp8.Machine) { frames++ })

	const callers, perCaller = 4, 25

	errs := make(chan error, callers*perCaller)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perCaller; j++ {
				errs <- c.Frame()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	// frames run one at a time, so the hook counter needs no locking
	assert.Equal(t, callers*perCaller, frames)
}

func TestConsolePause(t *testing.T) {
	c, _, _, _ := testConsole(t, 0x12, 0x00)

	assert.False(t, c.Paused())
	c.Pause()
	assert.True(t, c.Paused())
	c.Resume()
	assert.False(t, c.Paused())
}
