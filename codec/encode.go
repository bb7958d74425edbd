package codec

import (
	"fmt"

	"github.com/joha7809/Chisel-Erode/bitfield"
	"github.com/joha7809/Chisel-Erode/isa"
)

// Encode packs a resolved instruction into a word.
//
// The operands must already match the format of the opcode, which the
// assembler's validator guarantees; a mismatch is a programming error and
// panics. An I-format instruction without an operand encodes an immediate of
// zero. Values that do not fit their field are reported as
// *RegisterOutOfRangeError or *ImmediateOutOfRangeError.
func Encode(inst isa.Instruction) (uint32, error) {
	format := inst.Opcode.Format()
	fields := Layout(format)

	operands := inst.Operands
	if format == isa.FormatI && len(operands) == 0 {
		operands = []isa.Operand{isa.Imm(0)}
	}

	if len(operands) != len(fields) {
		panic(fmt.Sprintf("%s expects %d operands, got %d",
			inst.Opcode, len(fields), len(operands)))
	}

	word := bitfield.Set(0, OpcodeHi, OpcodeLo, uint32(inst.Opcode.Code()))

	for i, field := range fields {
		op := operands[i]
		if op.Kind != field.Kind {
			panic(fmt.Sprintf("%s operand %d: expected %s, got %s",
				inst.Opcode, i, field.Kind, op.Kind))
		}

		if !bitfield.Fits(op.Value, field.Width()) {
			if field.Kind == isa.KindRegister {
				return 0, &RegisterOutOfRangeError{Value: op.Value}
			}

			return 0, &ImmediateOutOfRangeError{
				Bits:  field.Width(),
				Value: op.Value,
			}
		}

		word = bitfield.Set(word, field.Hi, field.Lo, uint32(op.Value))
	}

	return word, nil
}

// EncodeProgram encodes every instruction in order. It stops at the first
// failure and returns it wrapped in an *InstructionError.
func EncodeProgram(program []isa.Instruction) ([]uint32, error) {
	words := make([]uint32, 0, len(program))

	for i, inst := range program {
		word, err := Encode(inst)
		if err != nil {
			return nil, &InstructionError{Index: i, Inst: inst, Err: err}
		}

		words = append(words, word)
	}

	return words, nil
}
