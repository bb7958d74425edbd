package asm

import (
	"fmt"

	"github.com/joha7809/Chisel-Erode/isa"
)

// LocatedError is implemented by every error the assembler produces. The
// span points at the source text the error is about.
type LocatedError interface {
	error
	Location() Span
}

// UnexpectedTokenError is returned when a token appears where the grammar
// does not allow it.
type UnexpectedTokenError struct {
	Expected string
	Found    string
	Span     Span
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

func (e *UnexpectedTokenError) Location() Span { return e.Span }

// UnexpectedEndOfInputError is returned when the input stops in the middle
// of an instruction. Span is the last token seen.
type UnexpectedEndOfInputError struct {
	Span Span
}

func (e *UnexpectedEndOfInputError) Error() string {
	return "unexpected end of input"
}

func (e *UnexpectedEndOfInputError) Location() Span { return e.Span }

// DuplicateLabelError is returned for the second definition of a label.
type DuplicateLabelError struct {
	Label string
	Span  Span
	First Span
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("label %q is already defined on line %d",
		e.Label, e.First.Line+1)
}

func (e *DuplicateLabelError) Location() Span { return e.Span }

// UndefinedLabelError is returned for a reference to a label that is never
// defined.
type UndefinedLabelError struct {
	Label string
	Span  Span
}

func (e *UndefinedLabelError) Error() string {
	return fmt.Sprintf("undefined label %q", e.Label)
}

func (e *UndefinedLabelError) Location() Span { return e.Span }

// OperandCountMismatchError is returned when an instruction has the wrong
// number of operands for its format.
type OperandCountMismatchError struct {
	Format   isa.Format
	Expected int
	Found    int
	Span     Span
}

func (e *OperandCountMismatchError) Error() string {
	return fmt.Sprintf("%s format takes %d operands, found %d",
		e.Format, e.Expected, e.Found)
}

func (e *OperandCountMismatchError) Location() Span { return e.Span }

// OperandTypeMismatchError is returned when an operand has the wrong kind
// for its position.
type OperandTypeMismatchError struct {
	Expected isa.OperandKind
	Found    OperandKind
	Span     Span
}

func (e *OperandTypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s operand, found %s", e.Expected, e.Found)
}

func (e *OperandTypeMismatchError) Location() Span { return e.Span }

// InvalidRegisterError is returned for a register outside R0..R31.
type InvalidRegisterError struct {
	Value uint64
	Span  Span
}

func (e *InvalidRegisterError) Error() string {
	return fmt.Sprintf("invalid register R%d, registers are R0 to R%d",
		e.Value, isa.RegisterCount-1)
}

func (e *InvalidRegisterError) Location() Span { return e.Span }

// EncodeFailure wraps an encoder error with the instruction it came from.
type EncodeFailure struct {
	Index int
	Span  Span
	Err   error
}

func (e *EncodeFailure) Error() string {
	return e.Err.Error()
}

func (e *EncodeFailure) Unwrap() error { return e.Err }

func (e *EncodeFailure) Location() Span { return e.Span }
