package chirp8_test

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/aquinn/chirp8"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		name  string
		words [2]byte
		want  string
	}{
		{"cls", [2]byte{0x00, 0xE0}, "CLS"},
		{"ret", [2]byte{0x00, 0xEE}, "RET"},
		{"sys", [2]byte{0x02, 0x34}, "SYS 0x234"},
		{"jp", [2]byte{0x1A, 0xBC}, "JP 0xABC"},
		{"call", [2]byte{0x2A, 0xBC}, "CALL 0xABC"},
		{"se byte", [2]byte{0x31, 0x42}, "SE V1, 0x42"},
		{"ld byte", [2]byte{0x6A, 0x0F}, "LD VA, 0x0F"},
		{"add reg", [2]byte{0x81, 0x24}, "ADD V1, V2"},
		{"shr", [2]byte{0x81, 0x06}, "SHR V1"},
		{"ld i", [2]byte{0xA1, 0x23}, "LD I, 0x123"},
		{"rnd", [2]byte{0xC3, 0x7F}, "RND V3, 0x7F"},
		{"drw", [2]byte{0xD1, 0x25}, "DRW V1, V2, 5"},
		{"skp", [2]byte{0xE1, 0x9E}, "SKP V1"},
		{"wait key", [2]byte{0xF4, 0x0A}, "LD V4, K"},
		{"bcd", [2]byte{0xF7, 0x33}, "LD B, V7"},
		{"store regs", [2]byte{0xF5, 0x55}, "LD [I], V5"},
		{"load regs", [2]byte{0xF5, 0x65}, "LD V5, [I]"},
		{"invalid", [2]byte{0xFF, 0xFF}, ".word 0xFFFF"},
	}

	m := chirp8.New(1)
	for _, tt := range tests {
		m.Memory[0x200] = tt.words[0]
		m.Memory[0x201] = tt.words[1]

		assert.Equal(t, tt.want, m.Disassemble(0x200), tt.name)
	}
}

func TestDisassembleOutOfBounds(t *testing.T) {
	m := chirp8.New(1)

	assert.Equal(t, "", m.Disassemble(chirp8.MemorySize-1))
	assert.Equal(t, "SYS 0x000", m.Disassemble(chirp8.MemorySize-2))
}
