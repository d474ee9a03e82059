package chirp8

// Instruction costs in emulated microseconds, charged against the frame
// budget. DRW dominates by two orders of magnitude, as it does on the
// original hardware.
const (
	costSys     = 100
	costCls     = 109
	costRet     = 105
	costJp      = 105
	costCall    = 105
	costSkip    = 61
	costLdByte  = 27
	costAddByte = 45
	costAlu     = 200
	costLdI     = 55
	costJpV0    = 105
	costRnd     = 164
	costDrw     = 22734
	costSkipKey = 73
	costWaitKey = 200
	costLdTimer = 45
	costAddI    = 86
	costLdFont  = 91
	costBcd     = 927
	costBlock   = 605
)

// exec runs a single decoded instruction and returns its cost. Every branch
// advances Pc itself; the only one that may leave it untouched is the
// key-wait, which retries at the same address until a key is held.
func (m *Machine) exec(op Op) (int, error) {
	switch op.Kind {
	case OpSys:
		// Machine code routines only existed on the original hosts.
		m.Pc += 2
		return costSys, nil

	case OpCls:
		m.fb = [FramebufferSize]byte{}
		m.Pc += 2
		return costCls, nil

	case OpRet:
		if m.Sp == 0 {
			return 0, ErrStackUnderflow
		}
		m.Sp--
		m.Pc = m.Stack[m.Sp]
		return costRet, nil

	case OpJp:
		m.Pc = op.NNN
		return costJp, nil

	case OpCall:
		if m.Sp >= 16 {
			return 0, ErrStackOverflow
		}
		m.Stack[m.Sp] = m.Pc + 2
		m.Sp++
		m.Pc = op.NNN
		return costCall, nil

	case OpSeByte:
		m.skipIf(m.V[op.X] == op.NN)
		return costSkip, nil

	case OpSneByte:
		m.skipIf(m.V[op.X] != op.NN)
		return costSkip, nil

	case OpSeReg:
		m.skipIf(m.V[op.X] == m.V[op.Y])
		return costSkip, nil

	case OpLdByte:
		m.V[op.X] = op.NN
		m.Pc += 2
		return costLdByte, nil

	case OpAddByte:
		m.V[op.X] += op.NN
		m.Pc += 2
		return costAddByte, nil

	case OpLdReg:
		m.V[op.X] = m.V[op.Y]
		m.Pc += 2
		return costLdByte, nil

	case OpOr:
		m.V[op.X] |= m.V[op.Y]
		m.Pc += 2
		return costAlu, nil

	case OpAnd:
		m.V[op.X] &= m.V[op.Y]
		m.Pc += 2
		return costAlu, nil

	case OpXor:
		m.V[op.X] ^= m.V[op.Y]
		m.Pc += 2
		return costAlu, nil

	case OpAddReg:
		a := m.V[op.X]
		sum := a + m.V[op.Y]
		m.V[op.X] = sum
		// truncated sum smaller than an addend means the add carried
		m.V[0xF] = bool2byte(sum < a)
		m.Pc += 2
		return costAddByte, nil

	case OpSub:
		a := m.V[op.X]
		diff := a - m.V[op.Y]
		m.V[op.X] = diff
		// a-b > a detects the borrow; VF holds NOT borrow
		m.V[0xF] = bool2byte(!(diff > a))
		m.Pc += 2
		return costAlu, nil

	case OpShr:
		out := m.V[op.X] & 0x01
		m.V[op.X] >>= 1
		m.V[0xF] = out
		m.Pc += 2
		return costAlu, nil

	case OpSubn:
		b := m.V[op.Y]
		diff := b - m.V[op.X]
		m.V[op.X] = diff
		m.V[0xF] = bool2byte(!(diff > b))
		m.Pc += 2
		return costAlu, nil

	case OpShl:
		out := m.V[op.X] >> 7
		m.V[op.X] <<= 1
		m.V[0xF] = out
		m.Pc += 2
		return costAlu, nil

	case OpSneReg:
		m.skipIf(m.V[op.X] != m.V[op.Y])
		return costSkip, nil

	case OpLdI:
		m.I = op.NNN
		m.Pc += 2
		return costLdI, nil

	case OpJpV0:
		m.Pc = uint16(m.V[0]) + op.NNN
		return costJpV0, nil

	case OpRnd:
		m.V[op.X] = m.randByte() & op.NN
		m.Pc += 2
		return costRnd, nil

	case OpDrw:
		if int(m.I)+int(op.N) > MemorySize {
			return 0, ErrIndexOutOfBounds{I: m.I}
		}
		collision := false
		for i := byte(0); i < op.N; i++ {
			collision = m.drawRow(m.V[op.X], m.V[op.Y]+i, m.Memory[m.I+uint16(i)]) || collision
		}
		m.V[0xF] = bool2byte(collision)
		m.Pc += 2
		return costDrw, nil

	case OpSkp:
		m.skipIf(m.keyHeld(m.V[op.X]))
		return costSkipKey, nil

	case OpSknp:
		m.skipIf(!m.keyHeld(m.V[op.X]))
		return costSkipKey, nil

	case OpLdVxDt:
		m.V[op.X] = m.Dt
		m.Pc += 2
		return costLdByte, nil

	case OpLdVxKey:
		// Level triggered: without a held key Pc stays put and the
		// instruction re-executes next cycle, burning budget each time.
		for k := byte(0); k <= 0xF; k++ {
			if m.Keypad&(1<<k) != 0 {
				m.V[op.X] = k
				m.Pc += 2
				break
			}
		}
		return costWaitKey, nil

	case OpLdDtVx:
		m.Dt = m.V[op.X]
		m.Pc += 2
		return costLdTimer, nil

	case OpLdStVx:
		m.St = m.V[op.X]
		m.Pc += 2
		return costLdTimer, nil

	case OpAddI:
		m.I += uint16(m.V[op.X])
		m.Pc += 2
		return costAddI, nil

	case OpLdFont:
		m.I = fontBase + uint16(m.V[op.X])*glyphBytes
		m.Pc += 2
		return costLdFont, nil

	case OpLdBcd:
		if int(m.I)+3 > MemorySize {
			return 0, ErrIndexOutOfBounds{I: m.I}
		}
		v := m.V[op.X]
		m.Memory[m.I+0] = v / 100
		m.Memory[m.I+1] = v / 10 % 10
		m.Memory[m.I+2] = v % 10
		m.Pc += 2
		return costBcd, nil

	case OpLdMemVx:
		if int(m.I)+int(op.X)+1 > MemorySize {
			return 0, ErrIndexOutOfBounds{I: m.I}
		}
		for i := byte(0); i <= op.X; i++ {
			m.Memory[m.I+uint16(i)] = m.V[i]
		}
		m.Pc += 2
		return costBlock, nil

	case OpLdVxMem:
		if int(m.I)+int(op.X)+1 > MemorySize {
			return 0, ErrIndexOutOfBounds{I: m.I}
		}
		for i := byte(0); i <= op.X; i++ {
			m.V[i] = m.Memory[m.I+uint16(i)]
		}
		m.Pc += 2
		return costBlock, nil
	}

	// Decode never hands exec an unknown kind.
	return 0, ErrInvalidOp{}
}

func (m *Machine) skipIf(cond bool) {
	if cond {
		m.Pc += 4
	} else {
		m.Pc += 2
	}
}

func (m *Machine) keyHeld(k byte) bool {
	if k > 0xF {
		return false
	}

	return m.Keypad&(1<<k) != 0
}

func bool2byte(b bool) byte {
	if b {
		return 1
	}

	return 0
}
