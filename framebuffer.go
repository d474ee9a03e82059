package chirp8

// drawRow XORs one 8-pixel sprite row onto the framebuffer at (x, y).
// Coordinates wrap on both axes. A row that is not byte-aligned straddles
// two framebuffer bytes, so it is split by shifting, with the right half
// wrapping around to the start of the same pixel row. Reports whether the
// XOR cleared a previously lit pixel.
func (m *Machine) drawRow(x, y, sprite byte) bool {
	x %= ScreenWidth
	y %= ScreenHeight

	row := uint(y) * ScreenWidth / 8
	left := row + uint(x)/8
	shift := uint(x) % 8

	if shift == 0 {
		prev := m.fb[left]
		m.fb[left] ^= sprite

		// previous AND NOT current
		return prev&^m.fb[left] != 0
	}

	right := row + (uint(x)/8+1)%(ScreenWidth/8)

	prevL := m.fb[left]
	prevR := m.fb[right]
	m.fb[left] ^= sprite >> shift
	m.fb[right] ^= sprite << (8 - shift)

	return prevL&^m.fb[left] != 0 || prevR&^m.fb[right] != 0
}

// Pixel reports whether the pixel at (x, y) is lit. Coordinates outside the
// screen are reported as unlit.
func (m *Machine) Pixel(x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return false
	}

	return m.fb[y*ScreenWidth/8+x/8]&(0x80>>(x%8)) != 0
}
