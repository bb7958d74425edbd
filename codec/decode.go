package codec

import (
	"github.com/joha7809/Chisel-Erode/bitfield"
	"github.com/joha7809/Chisel-Erode/isa"
)

// Decode unpacks a word. It reports false when the opcode field matches no
// opcode. The operand fields are read back as they are, without range
// checks. Label names are not recovered; jump targets decode as immediates.
func Decode(word uint32) (isa.Instruction, bool) {
	code := uint8(bitfield.Get(word, OpcodeHi, OpcodeLo))

	op, ok := isa.OpcodeFromCode(code)
	if !ok {
		return isa.Instruction{}, false
	}

	var operands []isa.Operand
	for _, field := range Layout(op.Format()) {
		operands = append(operands, isa.Operand{
			Kind:  field.Kind,
			Value: uint64(bitfield.Get(word, field.Hi, field.Lo)),
		})
	}

	return isa.Instruction{Opcode: op, Operands: operands}, true
}

// DecodeProgram decodes a word stream. The first word with an unknown opcode
// fails the whole stream with an *UnknownOpcodeError.
func DecodeProgram(words []uint32) (isa.Program, error) {
	program := make(isa.Program, 0, len(words))

	for i, word := range words {
		inst, ok := Decode(word)
		if !ok {
			return nil, &UnknownOpcodeError{
				Index: i,
				Word:  word,
				Code:  uint8(bitfield.Get(word, OpcodeHi, OpcodeLo)),
			}
		}

		program = append(program, inst)
	}

	return program, nil
}
