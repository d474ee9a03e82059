package chirp8

import "sync"

// Keyboard supplies the keypad bitmask sampled at the start of each frame.
type Keyboard interface {
	Mask() uint16
}

// InMemoryKeyboard is a thread-safe keypad mask. Frontends that receive key
// events on another goroutine (websocket readers, UI callbacks) press and
// release into it, and the console samples it each frame.
type InMemoryKeyboard struct {
	mu   sync.Mutex
	mask uint16
}

func NewInMemoryKeyboard() *InMemoryKeyboard {
	return &InMemoryKeyboard{}
}

// Mask implements Keyboard.
func (kb *InMemoryKeyboard) Mask() uint16 {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	return kb.mask
}

// Set replaces the whole mask at once.
func (kb *InMemoryKeyboard) Set(mask uint16) {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	kb.mask = mask
}

func (kb *InMemoryKeyboard) Press(k byte) {
	if k > 0xF {
		return
	}

	kb.mu.Lock()
	defer kb.mu.Unlock()

	kb.mask |= KeyMask(k)
}

func (kb *InMemoryKeyboard) Release(k byte) {
	if k > 0xF {
		return
	}

	kb.mu.Lock()
	defer kb.mu.Unlock()

	kb.mask &^= KeyMask(k)
}
