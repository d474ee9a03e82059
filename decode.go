package chirp8

// OpKind identifies one instruction of the CHIP-8 set.
type OpKind byte

const (
	// OpSys :: 0nnn, jump to a machine code routine. Ignored by modern
	// interpreters, kept as a costed no-op.
	OpSys OpKind = iota
	// OpCls :: 00E0, clear the display.
	OpCls
	// OpRet :: 00EE, return from a subroutine.
	OpRet
	// OpJp :: 1nnn, jump to nnn.
	OpJp
	// OpCall :: 2nnn, call subroutine at nnn.
	OpCall
	// OpSeByte :: 3xnn, skip next instruction if Vx == nn.
	OpSeByte
	// OpSneByte :: 4xnn, skip next instruction if Vx != nn.
	OpSneByte
	// OpSeReg :: 5xy0, skip next instruction if Vx == Vy.
	OpSeReg
	// OpLdByte :: 6xnn, Vx = nn.
	OpLdByte
	// OpAddByte :: 7xnn, Vx += nn without touching VF.
	OpAddByte
	// OpLdReg :: 8xy0, Vx = Vy.
	OpLdReg
	// OpOr :: 8xy1, Vx |= Vy.
	OpOr
	// OpAnd :: 8xy2, Vx &= Vy.
	OpAnd
	// OpXor :: 8xy3, Vx ^= Vy.
	OpXor
	// OpAddReg :: 8xy4, Vx += Vy, VF = carry.
	OpAddReg
	// OpSub :: 8xy5, Vx -= Vy, VF = NOT borrow.
	OpSub
	// OpShr :: 8xy6, Vx >>= 1, VF = shifted-out bit.
	OpShr
	// OpSubn :: 8xy7, Vx = Vy - Vx, VF = NOT borrow.
	OpSubn
	// OpShl :: 8xyE, Vx <<= 1, VF = shifted-out bit.
	OpShl
	// OpSneReg :: 9xy0, skip next instruction if Vx != Vy.
	OpSneReg
	// OpLdI :: Annn, I = nnn.
	OpLdI
	// OpJpV0 :: Bnnn, jump to V0 + nnn.
	OpJpV0
	// OpRnd :: Cxnn, Vx = random byte AND nn.
	OpRnd
	// OpDrw :: Dxyn, draw an n-byte sprite at (Vx, Vy), VF = collision.
	OpDrw
	// OpSkp :: Ex9E, skip next instruction if key Vx is held.
	OpSkp
	// OpSknp :: ExA1, skip next instruction if key Vx is not held.
	OpSknp
	// OpLdVxDt :: Fx07, Vx = Dt.
	OpLdVxDt
	// OpLdVxKey :: Fx0A, wait for a key press and store it in Vx.
	OpLdVxKey
	// OpLdDtVx :: Fx15, Dt = Vx.
	OpLdDtVx
	// OpLdStVx :: Fx18, St = Vx.
	OpLdStVx
	// OpAddI :: Fx1E, I += Vx with 16-bit wraparound.
	OpAddI
	// OpLdFont :: Fx29, I = address of the glyph for digit Vx.
	OpLdFont
	// OpLdBcd :: Fx33, store the BCD digits of Vx at I, I+1, I+2.
	OpLdBcd
	// OpLdMemVx :: Fx55, copy V0..Vx to memory starting at I.
	OpLdMemVx
	// OpLdVxMem :: Fx65, copy memory starting at I into V0..Vx.
	OpLdVxMem
)

// Op is a decoded instruction: its kind plus every operand field the
// encoding carries. Unused fields are left zero.
type Op struct {
	Kind OpKind
	// X and Y are register indexes, always in 0x0..0xF.
	X, Y byte
	// N is the low nibble, the sprite height of DRW.
	N byte
	// NN is the low byte immediate.
	NN byte
	// NNN is the 12-bit address immediate.
	NNN uint16
}

func hiNib(b byte) byte { return b >> 4 }
func loNib(b byte) byte { return b & 0x0F }

// Decode maps a two-byte instruction word onto its Op. Words that match no
// known encoding return ErrInvalidOp carrying both bytes.
func Decode(w0, w1 byte) (Op, error) {
	op := Op{
		X:   loNib(w0),
		Y:   hiNib(w1),
		N:   loNib(w1),
		NN:  w1,
		NNN: uint16(loNib(w0))<<8 | uint16(w1),
	}

	switch hiNib(w0) {
	case 0x0:
		switch {
		case w0 == 0x00 && w1 == 0xE0:
			op.Kind = OpCls
		case w0 == 0x00 && w1 == 0xEE:
			op.Kind = OpRet
		default:
			op.Kind = OpSys
		}

	case 0x1:
		op.Kind = OpJp
	case 0x2:
		op.Kind = OpCall
	case 0x3:
		op.Kind = OpSeByte
	case 0x4:
		op.Kind = OpSneByte

	case 0x5:
		if loNib(w1) != 0x0 {
			return Op{}, ErrInvalidOp{Words: [2]byte{w0, w1}}
		}
		op.Kind = OpSeReg

	case 0x6:
		op.Kind = OpLdByte
	case 0x7:
		op.Kind = OpAddByte

	case 0x8:
		switch loNib(w1) {
		case 0x0:
			op.Kind = OpLdReg
		case 0x1:
			op.Kind = OpOr
		case 0x2:
			op.Kind = OpAnd
		case 0x3:
			op.Kind = OpXor
		case 0x4:
			op.Kind = OpAddReg
		case 0x5:
			op.Kind = OpSub
		case 0x6:
			op.Kind = OpShr
		case 0x7:
			op.Kind = OpSubn
		case 0xE:
			op.Kind = OpShl
		default:
			return Op{}, ErrInvalidOp{Words: [2]byte{w0, w1}}
		}

	case 0x9:
		if loNib(w1) != 0x0 {
			return Op{}, ErrInvalidOp{Words: [2]byte{w0, w1}}
		}
		op.Kind = OpSneReg

	case 0xA:
		op.Kind = OpLdI
	case 0xB:
		op.Kind = OpJpV0
	case 0xC:
		op.Kind = OpRnd
	case 0xD:
		op.Kind = OpDrw

	case 0xE:
		switch w1 {
		case 0x9E:
			op.Kind = OpSkp
		case 0xA1:
			op.Kind = OpSknp
		default:
			return Op{}, ErrInvalidOp{Words: [2]byte{w0, w1}}
		}

	case 0xF:
		switch w1 {
		case 0x07:
			op.Kind = OpLdVxDt
		case 0x0A:
			op.Kind = OpLdVxKey
		case 0x15:
			op.Kind = OpLdDtVx
		case 0x18:
			op.Kind = OpLdStVx
		case 0x1E:
			op.Kind = OpAddI
		case 0x29:
			op.Kind = OpLdFont
		case 0x33:
			op.Kind = OpLdBcd
		case 0x55:
			op.Kind = OpLdMemVx
		case 0x65:
			op.Kind = OpLdVxMem
		default:
			return Op{}, ErrInvalidOp{Words: [2]byte{w0, w1}}
		}
	}

	return op, nil
}
