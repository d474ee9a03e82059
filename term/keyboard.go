package term

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/aquinn/chirp8"
)

// holdFor is how long a received character keeps its key pressed.
// Terminals only report presses, never releases, so each press decays on
// its own; key repeat refreshes the hold while a key is physically down.
const holdFor = 150 * time.Millisecond

// Keyboard reads single characters from the controlling terminal in cbreak
// mode and turns them into a decaying keypad mask.
type Keyboard struct {
	tty    *os.File
	saved  unix.Termios
	layout chirp8.KeyboardLayout

	mu   sync.Mutex
	held [16]time.Time
}

// NewKeyboard opens /dev/tty, switches it to cbreak mode and starts the
// reader goroutine. Close restores the terminal.
func NewKeyboard(layout chirp8.KeyboardLayout) (*Keyboard, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}

	kb := &Keyboard{
		tty:    tty,
		layout: layout,
	}

	if err := termios.Tcgetattr(tty.Fd(), &kb.saved); err != nil {
		_ = tty.Close()
		return nil, fmt.Errorf("reading terminal attributes: %w", err)
	}

	cbreak := kb.saved
	termios.Cfmakecbreak(&cbreak)
	if err := termios.Tcsetattr(tty.Fd(), termios.TCIFLUSH, &cbreak); err != nil {
		_ = tty.Close()
		return nil, fmt.Errorf("setting cbreak mode: %w", err)
	}

	go kb.readLoop()

	return kb, nil
}

func (kb *Keyboard) readLoop() {
	buf := make([]byte, 1)
	for {
		n, err := kb.tty.Read(buf)
		if err != nil || n == 0 {
			return
		}

		if k, ok := kb.layout.Key(rune(buf[0])); ok {
			kb.mu.Lock()
			kb.held[k] = time.Now()
			kb.mu.Unlock()
		}
	}
}

// Mask implements chirp8.Keyboard.
func (kb *Keyboard) Mask() uint16 {
	now := time.Now()

	kb.mu.Lock()
	defer kb.mu.Unlock()

	var mask uint16
	for k, pressed := range kb.held {
		if !pressed.IsZero() && now.Sub(pressed) < holdFor {
			mask |= 1 << k
		}
	}

	return mask
}

// Close restores the saved terminal attributes and closes the tty.
func (kb *Keyboard) Close() error {
	if err := termios.Tcsetattr(kb.tty.Fd(), termios.TCIFLUSH, &kb.saved); err != nil {
		_ = kb.tty.Close()
		return fmt.Errorf("restoring terminal attributes: %w", err)
	}

	return kb.tty.Close()
}
