package chirp8_test

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/aquinn/chirp8"
)

func TestKeyMask(t *testing.T) {
	assert.Equal(t, uint16(0x0001), chirp8.KeyMask(0x0))
	assert.Equal(t, uint16(0x0080), chirp8.KeyMask(0x7))
	assert.Equal(t, uint16(0x8000), chirp8.KeyMask(0xF))
}

func TestDefaultKeyboardLayout(t *testing.T) {
	tests := []struct {
		char rune
		key  byte
	}{
		{'1', 0x1},
		{'2', 0x2},
		{'4', 0xC},
		{'q', 0x4},
		{'r', 0xD},
		{'a', 0x7},
		{'f', 0xE},
		{'z', 0xA},
		{'x', 0x0},
		{'c', 0xB},
		{'v', 0xF},
	}

	for _, tt := range tests {
		key, ok := chirp8.DefaultKeyboardLayout.Key(tt.char)
		assert.True(t, ok)
		assert.Equal(t, tt.key, key)
	}
}

func TestKeyboardLayoutIgnoresCase(t *testing.T) {
	lower, ok := chirp8.DefaultKeyboardLayout.Key('q')
	assert.True(t, ok)
	upper, ok := chirp8.DefaultKeyboardLayout.Key('Q')
	assert.True(t, ok)
	assert.Equal(t, lower, upper)
}

func TestKeyboardLayoutUnmappedChar(t *testing.T) {
	_, ok := chirp8.DefaultKeyboardLayout.Key('p')
	assert.False(t, ok)
}
