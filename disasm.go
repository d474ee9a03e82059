package chirp8

import "fmt"

// String renders the op as a Cowgod-style mnemonic, the notation the
// debugger surfaces show.
func (op Op) String() string {
	switch op.Kind {
	case OpSys:
		return fmt.Sprintf("SYS 0x%03X", op.NNN)
	case OpCls:
		return "CLS"
	case OpRet:
		return "RET"
	case OpJp:
		return fmt.Sprintf("JP 0x%03X", op.NNN)
	case OpCall:
		return fmt.Sprintf("CALL 0x%03X", op.NNN)
	case OpSeByte:
		return fmt.Sprintf("SE V%X, 0x%02X", op.X, op.NN)
	case OpSneByte:
		return fmt.Sprintf("SNE V%X, 0x%02X", op.X, op.NN)
	case OpSeReg:
		return fmt.Sprintf("SE V%X, V%X", op.X, op.Y)
	case OpLdByte:
		return fmt.Sprintf("LD V%X, 0x%02X", op.X, op.NN)
	case OpAddByte:
		return fmt.Sprintf("ADD V%X, 0x%02X", op.X, op.NN)
	case OpLdReg:
		return fmt.Sprintf("LD V%X, V%X", op.X, op.Y)
	case OpOr:
		return fmt.Sprintf("OR V%X, V%X", op.X, op.Y)
	case OpAnd:
		return fmt.Sprintf("AND V%X, V%X", op.X, op.Y)
	case OpXor:
		return fmt.Sprintf("XOR V%X, V%X", op.X, op.Y)
	case OpAddReg:
		return fmt.Sprintf("ADD V%X, V%X", op.X, op.Y)
	case OpSub:
		return fmt.Sprintf("SUB V%X, V%X", op.X, op.Y)
	case OpShr:
		return fmt.Sprintf("SHR V%X", op.X)
	case OpSubn:
		return fmt.Sprintf("SUBN V%X, V%X", op.X, op.Y)
	case OpShl:
		return fmt.Sprintf("SHL V%X", op.X)
	case OpSneReg:
		return fmt.Sprintf("SNE V%X, V%X", op.X, op.Y)
	case OpLdI:
		return fmt.Sprintf("LD I, 0x%03X", op.NNN)
	case OpJpV0:
		return fmt.Sprintf("JP V0, 0x%03X", op.NNN)
	case OpRnd:
		return fmt.Sprintf("RND V%X, 0x%02X", op.X, op.NN)
	case OpDrw:
		return fmt.Sprintf("DRW V%X, V%X, %d", op.X, op.Y, op.N)
	case OpSkp:
		return fmt.Sprintf("SKP V%X", op.X)
	case OpSknp:
		return fmt.Sprintf("SKNP V%X", op.X)
	case OpLdVxDt:
		return fmt.Sprintf("LD V%X, DT", op.X)
	case OpLdVxKey:
		return fmt.Sprintf("LD V%X, K", op.X)
	case OpLdDtVx:
		return fmt.Sprintf("LD DT, V%X", op.X)
	case OpLdStVx:
		return fmt.Sprintf("LD ST, V%X", op.X)
	case OpAddI:
		return fmt.Sprintf("ADD I, V%X", op.X)
	case OpLdFont:
		return fmt.Sprintf("LD F, V%X", op.X)
	case OpLdBcd:
		return fmt.Sprintf("LD B, V%X", op.X)
	case OpLdMemVx:
		return fmt.Sprintf("LD [I], V%X", op.X)
	case OpLdVxMem:
		return fmt.Sprintf("LD V%X, [I]", op.X)
	}

	return "???"
}

// Disassemble renders the instruction at addr. Bytes that decode to nothing
// come back as a raw word directive so debugger listings stay aligned.
func (m *Machine) Disassemble(addr uint16) string {
	if addr > MemorySize-2 {
		return ""
	}

	op, err := Decode(m.Memory[addr], m.Memory[addr+1])
	if err != nil {
		return fmt.Sprintf(".word 0x%02X%02X", m.Memory[addr], m.Memory[addr+1])
	}

	return op.String()
}
