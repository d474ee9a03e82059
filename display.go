package chirp8

// Display consumes the packed framebuffer once per frame.
type Display interface {
	// Render is handed the machine's packed 64x32 framebuffer. The slice
	// must not be retained past the call.
	Render(fb []byte) error
}

// InMemoryDisplay keeps a copy of the last rendered framebuffer. Useful as
// a stand-in when a frontend renders on its own schedule, and in tests.
type InMemoryDisplay struct {
	Last [FramebufferSize]byte
}

func NewInMemoryDisplay() *InMemoryDisplay {
	return &InMemoryDisplay{}
}

// Render implements Display.
func (d *InMemoryDisplay) Render(fb []byte) error {
	copy(d.Last[:], fb)

	return nil
}
