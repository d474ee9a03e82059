package chirp8

// KeyMask returns the keypad bit for key k (0x0-0xF).
func KeyMask(k byte) uint16 {
	return 1 << (k & 0xF)
}

// KeyboardLayout maps host characters onto CHIP-8 keys. The zero value of a
// lookup miss is key 0, so frontends should check presence themselves.
type KeyboardLayout map[rune]byte

// DefaultKeyboardLayout is the usual left-hand block mapping:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
var DefaultKeyboardLayout = KeyboardLayout{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Key returns the CHIP-8 key for a host character, case-insensitive for
// ASCII letters.
func (l KeyboardLayout) Key(c rune) (byte, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	k, ok := l[c]

	return k, ok
}
