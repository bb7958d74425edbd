package isa

import "fmt"

// Format classifies an opcode by the number and kinds of its operands, which
// also fixes how the operands are packed into the instruction word.
type Format uint8

// The instruction formats.
const (
	FormatR3   Format = iota // reg, reg, reg
	FormatR2                 // reg, reg
	FormatRI                 // reg, imm
	FormatRRI                // reg, reg, imm
	FormatRII                // reg, imm, imm
	FormatI                  // imm
	FormatNoOp               // no operands
)

var formatNames = [...]string{
	FormatR3:   "R3",
	FormatR2:   "R2",
	FormatRI:   "RI",
	FormatRRI:  "RRI",
	FormatRII:  "RII",
	FormatI:    "I",
	FormatNoOp: "NoOP",
}

var formatPatterns = [...][]OperandKind{
	FormatR3:   {KindRegister, KindRegister, KindRegister},
	FormatR2:   {KindRegister, KindRegister},
	FormatRI:   {KindRegister, KindImmediate},
	FormatRRI:  {KindRegister, KindRegister, KindImmediate},
	FormatRII:  {KindRegister, KindImmediate, KindImmediate},
	FormatI:    {KindImmediate},
	FormatNoOp: {},
}

func (f Format) String() string {
	if int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}

	return formatNames[f]
}

// Pattern returns the ordered operand kinds the format requires. The
// returned slice must not be modified.
func (f Format) Pattern() []OperandKind {
	if int(f) >= len(formatPatterns) {
		panic(fmt.Sprintf("unknown instruction format %d", uint8(f)))
	}

	return formatPatterns[f]
}

// Arity returns the number of operands the format requires.
func (f Format) Arity() int {
	return len(f.Pattern())
}
