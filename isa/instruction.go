package isa

import (
	"fmt"
	"strings"
)

// OperandKind tells registers and immediates apart.
type OperandKind uint8

const (
	KindRegister OperandKind = iota
	KindImmediate
)

func (k OperandKind) String() string {
	switch k {
	case KindRegister:
		return "register"
	case KindImmediate:
		return "immediate"
	default:
		return fmt.Sprintf("OperandKind(%d)", uint8(k))
	}
}

// Operand is a resolved operand: a register index or an immediate value.
type Operand struct {
	Kind  OperandKind
	Value uint64
}

// Reg makes a register operand.
func Reg(n uint64) Operand {
	return Operand{Kind: KindRegister, Value: n}
}

// Imm makes an immediate operand.
func Imm(v uint64) Operand {
	return Operand{Kind: KindImmediate, Value: v}
}

func (o Operand) String() string {
	if o.Kind == KindRegister {
		return fmt.Sprintf("R%d", o.Value)
	}

	return fmt.Sprintf("%d", o.Value)
}

// Instruction is a resolved instruction. The order of the operands is the
// order of the fields in the encoded word.
type Instruction struct {
	Opcode   Opcode
	Operands []Operand
}

// String renders the instruction in assembly syntax, e.g. "ADDI R1, R2, 5".
func (i Instruction) String() string {
	if len(i.Operands) == 0 {
		return i.Opcode.String()
	}

	ops := make([]string, len(i.Operands))
	for n, o := range i.Operands {
		ops[n] = o.String()
	}

	return i.Opcode.String() + " " + strings.Join(ops, ", ")
}

// Program is an ordered list of instructions. The index of an instruction is
// its address.
type Program []Instruction
