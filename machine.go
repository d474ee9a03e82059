package chirp8

const (
	// MemorySize is the full address space of the interpreter.
	MemorySize = 4096
	// ProgramStart is the address programs are loaded at and start from.
	ProgramStart = 0x200
	// MaxProgramSize is the largest ROM that fits into program memory.
	MaxProgramSize = MemorySize - ProgramStart

	// ScreenWidth and ScreenHeight are fixed; no SCHIP modes.
	ScreenWidth  = 64
	ScreenHeight = 32
	// FramebufferSize is the packed 1-bit-per-pixel screen size in bytes.
	FramebufferSize = ScreenWidth * ScreenHeight / 8

	fontBase   = 0x000
	glyphBytes = 5
)

// Machine holds the whole interpreter state for one emulated session. It is
// owned by a single caller and driven once per display frame through
// RunFrame; none of its methods are safe for concurrent use.
type Machine struct {
	// Memory is the 4096-byte address space. The font glyphs live at
	// 0x000-0x04F, the program at 0x200 onwards.
	Memory [MemorySize]byte
	// V are the general purpose registers. VF doubles as the
	// carry/borrow/collision flag and is overwritten by ALU and DRW ops.
	V [16]byte
	// I is the index register used by sprite, BCD and block-copy ops.
	I uint16
	// Pc is the program counter.
	Pc uint16
	// Stack holds return addresses; Sp points at the next free slot.
	Stack [16]uint16
	Sp    byte
	// Dt and St are the delay and sound timers, decremented once per frame.
	Dt byte
	St byte
	// Keypad is the current key bitmask, bit n set means key n is held.
	// It is fully replaced by every RunFrame call.
	Keypad uint16

	fb     [FramebufferSize]byte
	tone   bool
	budget int
	rng    uint64

	beforeFrameHooks []Hook
	afterFrameHooks  []Hook
	errorHooks       []ErrorHook
}

// New returns a machine with the font installed, Pc at the start of program
// memory and the random generator seeded deterministically from seed. Two
// machines built from the same seed produce identical RND sequences.
func New(seed uint64) *Machine {
	m := &Machine{
		Pc:  ProgramStart,
		rng: seedState(seed),
	}
	copy(m.Memory[fontBase:], font[:])

	return m
}

// LoadProgram copies program into memory starting at 0x200. The contents are
// not validated in any way; a bad opcode is only detected when execution
// reaches it.
func (m *Machine) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return ErrRomTooLarge{Size: len(program)}
	}

	copy(m.Memory[ProgramStart:], program)

	return nil
}

// Reset rewinds the machine to its power-on state while keeping the loaded
// program and the random generator state.
func (m *Machine) Reset() {
	m.V = [16]byte{}
	m.I = 0
	m.Pc = ProgramStart
	m.Stack = [16]uint16{}
	m.Sp = 0
	m.Dt = 0
	m.St = 0
	m.Keypad = 0
	m.fb = [FramebufferSize]byte{}
	m.tone = false
	m.budget = 0
}

// Framebuffer exposes the packed monochrome screen: 64x32 pixels, row-major,
// 8 pixels per byte, MSB first. The slice aliases machine state and is only
// valid to read between RunFrame calls.
func (m *Machine) Framebuffer() []byte {
	return m.fb[:]
}

// Tone reports whether the sound timer was active at the start of the last
// frame. Frontends use it to switch the beep on and off.
func (m *Machine) Tone() bool {
	return m.tone
}

// font is the built-in hexadecimal glyph set, 5 bytes per digit 0-F.
var font = [16 * glyphBytes]byte{
	// 0
	0xF0, 0x90, 0x90, 0x90, 0xF0,
	// 1
	0x20, 0x60, 0x20, 0x20, 0x70,
	// 2
	0xF0, 0x10, 0xF0, 0x80, 0xF0,
	// 3
	0xF0, 0x10, 0xF0, 0x10, 0xF0,
	// 4
	0x90, 0x90, 0xF0, 0x10, 0x10,
	// 5
	0xF0, 0x80, 0xF0, 0x10, 0xF0,
	// 6
	0xF0, 0x80, 0xF0, 0x90, 0xF0,
	// 7
	0xF0, 0x10, 0x20, 0x40, 0x40,
	// 8
	0xF0, 0x90, 0xF0, 0x90, 0xF0,
	// 9
	0xF0, 0x90, 0xF0, 0x10, 0xF0,
	// A
	0xF0, 0x90, 0xF0, 0x90, 0x90,
	// B
	0xE0, 0x90, 0xE0, 0x90, 0xE0,
	// C
	0xF0, 0x80, 0x80, 0x80, 0xF0,
	// D
	0xE0, 0x90, 0x90, 0x90, 0xE0,
	// E
	0xF0, 0x80, 0xF0, 0x80, 0xF0,
	// F
	0xF0, 0x80, 0xF0, 0x80, 0x80,
}
