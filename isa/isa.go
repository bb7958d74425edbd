// Package isa describes the 32-bit fixed-width instruction set: the opcodes,
// their mnemonics and 5-bit machine codes, and the instruction format each
// opcode follows.
//
// Every instruction occupies exactly one word. The opcode lives in bits
// [31:27]; the remaining 27 bits are laid out according to the format.
//
//	R3    opcode reg reg reg     ADD SUB MULT OR AND
//	R2    opcode reg reg         NOT LD SD
//	RI    opcode reg imm         LI
//	RRI   opcode reg reg imm     ADDI SUBI JEQ JGT
//	RII   opcode reg imm imm     JLTV JETV
//	I     opcode imm             JR
//	NoOP  opcode                 NOP END
//
// The tables in this file are the single place that binds an opcode to its
// mnemonic, code and format.
package isa

import "fmt"

// RegisterCount is the number of general purpose registers, R0 to R31.
const RegisterCount = 32

// CodeBits is the width of the opcode field.
const CodeBits = 5

// Opcode identifies an operation.
type Opcode uint8

// The opcodes of the instruction set.
const (
	OpADD Opcode = iota
	OpSUB
	OpMULT
	OpADDI
	OpSUBI
	OpOR
	OpAND
	OpNOT
	OpLI
	OpLD
	OpSD
	OpJR
	OpJEQ
	OpJLTV
	OpJGT
	OpJETV
	OpNOP
	OpEND

	numOpcodes
)

type opcodeInfo struct {
	mnemonic string
	code     uint8
	format   Format
}

var opcodeTable = [numOpcodes]opcodeInfo{
	// ALU
	OpADD:  {"ADD", 0b00001, FormatR3},
	OpSUB:  {"SUB", 0b00010, FormatR3},
	OpMULT: {"MULT", 0b00011, FormatR3},
	OpADDI: {"ADDI", 0b00100, FormatRRI},
	OpSUBI: {"SUBI", 0b00101, FormatRRI},
	OpOR:   {"OR", 0b00110, FormatR3},
	OpNOT:  {"NOT", 0b00111, FormatR2},
	OpAND:  {"AND", 0b10000, FormatR3},

	// Data transfer
	OpLI: {"LI", 0b01000, FormatRI},
	OpLD: {"LD", 0b01001, FormatR2},
	OpSD: {"SD", 0b01010, FormatR2},

	// Control
	OpJR:   {"JR", 0b01011, FormatI},
	OpJEQ:  {"JEQ", 0b01100, FormatRRI},
	OpJLTV: {"JLTV", 0b01101, FormatRII},
	OpJGT:  {"JGT", 0b01110, FormatRRI},
	OpJETV: {"JETV", 0b01111, FormatRII},
	OpNOP:  {"NOP", 0b00000, FormatNoOp},
	OpEND:  {"END", 0b11111, FormatNoOp},
}

var (
	byMnemonic = make(map[string]Opcode, numOpcodes)
	byCode     [1 << CodeBits]Opcode
	codeUsed   [1 << CodeBits]bool
)

func init() {
	for i, info := range opcodeTable {
		op := Opcode(i)

		if codeUsed[info.code] {
			panic(fmt.Sprintf("machine code %#b assigned to both %s and %s",
				info.code, byCode[info.code], op))
		}

		byMnemonic[info.mnemonic] = op
		byCode[info.code] = op
		codeUsed[info.code] = true
	}
}

// Opcodes returns every opcode in declaration order.
func Opcodes() []Opcode {
	ops := make([]Opcode, 0, numOpcodes)
	for op := Opcode(0); op < numOpcodes; op++ {
		ops = append(ops, op)
	}

	return ops
}

func (op Opcode) info() opcodeInfo {
	if op >= numOpcodes {
		panic(fmt.Sprintf("unknown opcode %d", uint8(op)))
	}

	return opcodeTable[op]
}

// Valid reports whether op is one of the defined opcodes.
func (op Opcode) Valid() bool {
	return op < numOpcodes
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Opcode(%d)", uint8(op))
	}

	return opcodeTable[op].mnemonic
}

// Code returns the 5-bit machine code of the opcode.
func (op Opcode) Code() uint8 {
	return op.info().code
}

// Format returns the instruction format of the opcode.
func (op Opcode) Format() Format {
	return op.info().format
}

// OpcodeFromMnemonic looks up an opcode by its mnemonic. The match is exact
// and case-sensitive.
func OpcodeFromMnemonic(mnemonic string) (Opcode, bool) {
	op, ok := byMnemonic[mnemonic]
	return op, ok
}

// OpcodeFromCode is the inverse of Opcode.Code. It reports false for codes
// that no opcode uses.
func OpcodeFromCode(code uint8) (Opcode, bool) {
	if int(code) >= len(byCode) || !codeUsed[code] {
		return 0, false
	}

	return byCode[code], true
}
