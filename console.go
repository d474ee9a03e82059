package chirp8

import (
	"context"
	"sync"
	"time"
)

// FramesPerSecond is the wall-clock frame rate every frontend paces at.
const FramesPerSecond = 60

// Console couples a machine with its peripherals and paces it at 60 frames
// of wall-clock time per second. The machine itself only counts emulated
// microseconds; the console supplies the real-time heartbeat.
type Console struct {
	M *Machine

	Display  Display
	Keyboard Keyboard
	Buzzer   Buzzer

	mu     sync.Mutex
	paused bool
}

func NewConsole(m *Machine, d Display, kb Keyboard, bz Buzzer) *Console {
	return &Console{
		M:        m,
		Display:  d,
		Keyboard: kb,
		Buzzer:   bz,
	}
}

// Run drives frames until ctx is cancelled or a frame fails. While paused
// the ticker keeps running but no frames execute, so Resume picks up on the
// next tick.
func (c *Console) Run(ctx context.Context) error {
	tick := time.NewTicker(time.Second / FramesPerSecond)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-tick.C:
			if c.Paused() {
				continue
			}
			if err := c.Frame(); err != nil {
				return err
			}
		}
	}
}

// Frame runs a single frame and pushes tone and framebuffer out to the
// peripherals. Debugger frontends call it directly to step while paused,
// possibly from their own goroutines, so frame execution is single-file:
// RunFrame is not reentrant and the mutex is what upholds that here.
func (c *Console) Frame() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.M.RunFrame(c.Keyboard.Mask()); err != nil {
		return err
	}

	if err := c.Buzzer.SetTone(c.M.Tone()); err != nil {
		return err
	}

	return c.Display.Render(c.M.Framebuffer())
}

func (c *Console) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.paused = true
}

func (c *Console) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.paused = false
}

func (c *Console) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.paused
}
