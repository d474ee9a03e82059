package chirp8

// The RND opcode needs a generator that is reproducible from the
// construction seed, so crypto-grade randomness is out. xorshift64* is
// small enough to live inline in the machine state and has no zero-seed
// trap once the seed is mixed through splitmix64.

func seedState(seed uint64) uint64 {
	z := seed + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB

	return z ^ (z >> 31)
}

func (m *Machine) randByte() byte {
	m.rng ^= m.rng >> 12
	m.rng ^= m.rng << 25
	m.rng ^= m.rng >> 27

	return byte((m.rng * 0x2545F4914F6CDD1D) >> 56)
}
