package codec

import (
	"fmt"

	"github.com/joha7809/Chisel-Erode/isa"
)

// RegisterOutOfRangeError reports a register index that does not fit the
// 5-bit register field.
type RegisterOutOfRangeError struct {
	Value uint64
}

func (e *RegisterOutOfRangeError) Error() string {
	return fmt.Sprintf("register R%d is out of range (0..%d)",
		e.Value, isa.RegisterCount-1)
}

// ImmediateOutOfRangeError reports an immediate that does not fit its field.
type ImmediateOutOfRangeError struct {
	Bits  uint8
	Value uint64
}

func (e *ImmediateOutOfRangeError) Error() string {
	return fmt.Sprintf("immediate value %d does not fit in %d bits",
		e.Value, e.Bits)
}

// InstructionError ties an encoding failure to the position of the
// instruction in the program.
type InstructionError struct {
	Index int
	Inst  isa.Instruction
	Err   error
}

func (e *InstructionError) Error() string {
	return fmt.Sprintf("instruction %d (%s): %v", e.Index, e.Inst, e.Err)
}

func (e *InstructionError) Unwrap() error {
	return e.Err
}

// UnknownOpcodeError reports a word whose opcode field matches no opcode.
type UnknownOpcodeError struct {
	Index int
	Word  uint32
	Code  uint8
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("word %d (%#08x): unknown opcode %#05b",
		e.Index, e.Word, e.Code)
}
