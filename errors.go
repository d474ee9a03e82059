package chirp8

import (
	"errors"
	"fmt"
)

// ErrStackUnderflow is returned when RET executes with an empty call stack.
var ErrStackUnderflow = errors.New("stack underflow: RET with an empty call stack")

// ErrStackOverflow is returned when CALL would nest deeper than 16 levels.
var ErrStackOverflow = errors.New("stack overflow: CALL beyond 16 nested calls")

// ErrDebug marks a diagnostic breakpoint. It is never produced by normal
// execution; hooks may return it to stop a session on purpose.
var ErrDebug = errors.New("debug break")

// ErrInvalidOp reports an instruction word that matches no known encoding.
type ErrInvalidOp struct {
	Words [2]byte
}

func (err ErrInvalidOp) Error() string {
	return fmt.Sprintf("invalid opcode %02X%02X", err.Words[0], err.Words[1])
}

// ErrRomTooLarge reports a program that does not fit between 0x200 and the
// end of memory.
type ErrRomTooLarge struct {
	Size int
}

func (err ErrRomTooLarge) Error() string {
	return fmt.Sprintf("rom of %d bytes does not fit into %d bytes of program memory", err.Size, MaxProgramSize)
}

// ErrIndexOutOfBounds reports a sprite draw, BCD write or block copy that
// would touch memory past the end of the address space.
type ErrIndexOutOfBounds struct {
	I uint16
}

func (err ErrIndexOutOfBounds) Error() string {
	return fmt.Sprintf("index register %d runs out of bounds", err.I)
}

// ErrPcOutOfBounds reports a fetch that would read past the end of memory.
type ErrPcOutOfBounds struct {
	Pc uint16
}

func (err ErrPcOutOfBounds) Error() string {
	return fmt.Sprintf("program counter %d is out of bounds", err.Pc)
}
