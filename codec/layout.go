// Package codec packs resolved instructions into 32-bit words and unpacks
// them again.
package codec

import (
	"fmt"

	"github.com/joha7809/Chisel-Erode/bitfield"
	"github.com/joha7809/Chisel-Erode/isa"
)

// The opcode occupies the top five bits of every word.
const (
	OpcodeHi uint8 = 31
	OpcodeLo uint8 = 27
)

// Field is one operand slot of an instruction word. Hi and Lo are inclusive.
type Field struct {
	Kind isa.OperandKind
	Hi   uint8
	Lo   uint8
}

// Width returns the number of bits the field holds.
func (f Field) Width() uint8 {
	return bitfield.Width(f.Hi, f.Lo)
}

// Operand fields in the order the operands appear, most significant first.
// The ranges of one format never overlap and never touch [31:27].
var layouts = [...][]Field{
	isa.FormatR3: {
		{isa.KindRegister, 26, 22},
		{isa.KindRegister, 21, 17},
		{isa.KindRegister, 16, 12},
	},
	isa.FormatR2: {
		{isa.KindRegister, 26, 22},
		{isa.KindRegister, 21, 17},
	},
	isa.FormatRI: {
		{isa.KindRegister, 26, 22},
		{isa.KindImmediate, 21, 0},
	},
	isa.FormatRRI: {
		{isa.KindRegister, 26, 22},
		{isa.KindRegister, 21, 17},
		{isa.KindImmediate, 16, 0},
	},
	isa.FormatRII: {
		{isa.KindRegister, 26, 22},
		{isa.KindImmediate, 21, 11},
		{isa.KindImmediate, 10, 0},
	},
	isa.FormatI: {
		{isa.KindImmediate, 26, 0},
	},
	isa.FormatNoOp: {},
}

// Layout returns the operand fields of a format.
func Layout(f isa.Format) []Field {
	if int(f) >= len(layouts) {
		panic(fmt.Sprintf("no layout for format %s", f))
	}

	return layouts[f]
}
