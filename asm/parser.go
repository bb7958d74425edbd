package asm

import (
	"fmt"

	"github.com/joha7809/Chisel-Erode/isa"
)

// OperandKind is the kind of an operand as written in the source.
type OperandKind uint8

const (
	OperandRegister OperandKind = iota
	OperandImmediate
	OperandLabelRef
)

func (k OperandKind) String() string {
	switch k {
	case OperandRegister:
		return "register"
	case OperandImmediate:
		return "immediate"
	case OperandLabelRef:
		return "label reference"
	default:
		return fmt.Sprintf("OperandKind(%d)", uint8(k))
	}
}

// Operand is an operand as written in the source. Label is set for label
// references; resolution turns them into immediates and keeps the name.
type Operand struct {
	Kind  OperandKind
	Value uint64
	Label string
	Span  Span
}

func (o Operand) isaKind() (isa.OperandKind, bool) {
	switch o.Kind {
	case OperandRegister:
		return isa.KindRegister, true
	case OperandImmediate:
		return isa.KindImmediate, true
	default:
		return 0, false
	}
}

// Statement is an instruction before validation. Its operands may still hold
// label references.
type Statement struct {
	Opcode     isa.Opcode
	OpcodeSpan Span
	Operands   []Operand
}

// Span covers the mnemonic and every operand.
func (s Statement) Span() Span {
	span := s.OpcodeSpan
	for _, op := range s.Operands {
		span = span.Cover(op.Span)
	}

	return span
}

// Instruction returns the resolved instruction. It panics if a label
// reference is left.
func (s Statement) Instruction() isa.Instruction {
	inst := isa.Instruction{Opcode: s.Opcode}

	for _, op := range s.Operands {
		kind, ok := op.isaKind()
		if !ok {
			panic(fmt.Sprintf("unresolved label %q", op.Label))
		}

		inst.Operands = append(inst.Operands, isa.Operand{Kind: kind, Value: op.Value})
	}

	return inst
}

// Program is the result of parsing: the instructions in address order with
// the source span of each one and the label table.
type Program struct {
	Instructions isa.Program
	Spans        []Span
	Labels       Labels
}

// BuildStatements groups tokens into statements. An opcode starts a
// statement; registers, immediates and label references after it become its
// operands. A label definition closes the current statement. Commas,
// comments and terminators separate nothing and are skipped, except that a
// comma followed by nothing but comments and terminators ends the input too
// early.
func BuildStatements(tokens []Token) ([]Statement, error) {
	var stmts []Statement
	current := -1

	for i, tok := range tokens {
		switch tok.Kind {
		case TokenOpcode:
			stmts = append(stmts, Statement{Opcode: tok.Opcode, OpcodeSpan: tok.Span})
			current = len(stmts) - 1

		case TokenLabelDef:
			current = -1

		case TokenRegister, TokenImmediate, TokenLabelRef:
			if current < 0 {
				return nil, &UnexpectedTokenError{
					Expected: "opcode",
					Found:    tok.String(),
					Span:     tok.Span,
				}
			}

			op, err := operandFromToken(tok)
			if err != nil {
				return nil, err
			}

			stmts[current].Operands = append(stmts[current].Operands, op)

		case TokenComma:
			if onlyTriviaAfter(tokens, i) {
				return nil, &UnexpectedEndOfInputError{Span: tok.Span}
			}
		}
	}

	return stmts, nil
}

// onlyTriviaAfter reports whether nothing but comments and terminators
// follows tokens[i].
func onlyTriviaAfter(tokens []Token, i int) bool {
	for _, tok := range tokens[i+1:] {
		if tok.Kind != TokenComment && tok.Kind != TokenTerminator {
			return false
		}
	}

	return true
}

func operandFromToken(tok Token) (Operand, error) {
	switch tok.Kind {
	case TokenRegister:
		if tok.Value >= isa.RegisterCount {
			return Operand{}, &InvalidRegisterError{Value: tok.Value, Span: tok.Span}
		}

		return Operand{Kind: OperandRegister, Value: tok.Value, Span: tok.Span}, nil

	case TokenImmediate:
		if tok.Negative {
			return Operand{}, &UnexpectedTokenError{
				Expected: "unsigned immediate",
				Found:    tok.Text,
				Span:     tok.Span,
			}
		}

		return Operand{Kind: OperandImmediate, Value: tok.Value, Span: tok.Span}, nil

	default:
		return Operand{Kind: OperandLabelRef, Label: tok.Text, Span: tok.Span}, nil
	}
}

// ResolveLabels replaces every label reference with an immediate holding the
// label's instruction index. Statements are updated in place.
func ResolveLabels(stmts []Statement, labels Labels) error {
	for i := range stmts {
		ops := stmts[i].Operands
		for j := range ops {
			if ops[j].Kind != OperandLabelRef {
				continue
			}

			index, ok := labels[ops[j].Label]
			if !ok {
				return &UndefinedLabelError{Label: ops[j].Label, Span: ops[j].Span}
			}

			ops[j].Kind = OperandImmediate
			ops[j].Value = uint64(index)
		}
	}

	return nil
}

// ParseProgram runs label collection, statement building, label resolution
// and validation in that order and stops at the first error.
func ParseProgram(tokens []Token) (*Program, error) {
	labels, err := ScanLabels(tokens)
	if err != nil {
		return nil, err
	}

	stmts, err := BuildStatements(tokens)
	if err != nil {
		return nil, err
	}

	err = ResolveLabels(stmts, labels)
	if err != nil {
		return nil, err
	}

	prog := &Program{
		Instructions: make(isa.Program, 0, len(stmts)),
		Spans:        make([]Span, 0, len(stmts)),
		Labels:       labels,
	}

	for _, stmt := range stmts {
		span := stmt.Span()

		err = Validate(stmt.Opcode.Format(), stmt.Operands, span)
		if err != nil {
			return nil, err
		}

		prog.Instructions = append(prog.Instructions, stmt.Instruction())
		prog.Spans = append(prog.Spans, span)
	}

	return prog, nil
}

// Parse turns tokens into resolved, validated instructions.
func Parse(tokens []Token) (isa.Program, error) {
	prog, err := ParseProgram(tokens)
	if err != nil {
		return nil, err
	}

	return prog.Instructions, nil
}
