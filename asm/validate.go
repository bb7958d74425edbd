package asm

import "github.com/joha7809/Chisel-Erode/isa"

// Validate checks the operands of one instruction against its format. The
// count is checked before the kinds; the first operand of the wrong kind is
// reported. span is the span of the whole instruction.
func Validate(format isa.Format, operands []Operand, span Span) error {
	pattern := format.Pattern()

	if len(operands) != len(pattern) {
		return &OperandCountMismatchError{
			Format:   format,
			Expected: len(pattern),
			Found:    len(operands),
			Span:     span,
		}
	}

	for i, want := range pattern {
		got, ok := operands[i].isaKind()
		if !ok || got != want {
			return &OperandTypeMismatchError{
				Expected: want,
				Found:    operands[i].Kind,
				Span:     operands[i].Span,
			}
		}
	}

	return nil
}
