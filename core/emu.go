package core

import (
	"fmt"

	"github.com/joha7809/Chisel-Erode/isa"
)

type coreState struct {
	PC        uint32
	Registers []uint32
	Code      []uint32
	Memory    Memory

	Cycle  uint64
	Halted bool
	Fault  error
}

type instEmulator struct {
}

// RunInst executes one decoded instruction. Unless the instruction jumps,
// the PC moves on to the next instruction.
func (i instEmulator) RunInst(inst isa.Instruction, state *coreState) error {
	instFuncs := map[isa.Opcode]func([]isa.Operand, *coreState) error{
		isa.OpADD:  i.runALU(func(a, b uint32) uint32 { return a + b }),
		isa.OpSUB:  i.runALU(func(a, b uint32) uint32 { return a - b }),
		isa.OpMULT: i.runALU(func(a, b uint32) uint32 { return a * b }),
		isa.OpOR:   i.runALU(func(a, b uint32) uint32 { return a | b }),
		isa.OpAND:  i.runALU(func(a, b uint32) uint32 { return a & b }),
		isa.OpADDI: i.runALUImm(func(a, b uint32) uint32 { return a + b }),
		isa.OpSUBI: i.runALUImm(func(a, b uint32) uint32 { return a - b }),
		isa.OpNOT:  i.runNot,
		isa.OpLI:   i.runLi,
		isa.OpLD:   i.runLd,
		isa.OpSD:   i.runSd,
		isa.OpJR:   i.runJr,
		isa.OpJEQ:  i.runBranch(func(a, b uint32) bool { return a == b }),
		isa.OpJGT:  i.runBranch(func(a, b uint32) bool { return a > b }),
		isa.OpJLTV: i.runBranchValue(func(a, v uint32) bool { return a < v }),
		isa.OpJETV: i.runBranchValue(func(a, v uint32) bool { return a == v }),
		isa.OpNOP:  func(_ []isa.Operand, state *coreState) error { state.PC++; return nil },
		isa.OpEND:  func(_ []isa.Operand, state *coreState) error { i.runEnd(state); return nil },
	}

	instFunc, ok := instFuncs[inst.Opcode]
	if !ok {
		panic(fmt.Sprintf("unknown instruction '%s' at PC %d", inst.Opcode, state.PC))
	}

	if len(inst.Operands) != inst.Opcode.Format().Arity() {
		panic(fmt.Sprintf("instruction '%s' at PC %d has %d operands",
			inst, state.PC, len(inst.Operands)))
	}

	return instFunc(inst.Operands, state)
}

func (i instEmulator) readReg(op isa.Operand, state *coreState) uint32 {
	return state.Registers[op.Value]
}

func (i instEmulator) writeReg(op isa.Operand, value uint32, state *coreState) {
	state.Registers[op.Value] = value
}

func (i instEmulator) runALU(
	f func(a, b uint32) uint32,
) func([]isa.Operand, *coreState) error {
	return func(ops []isa.Operand, state *coreState) error {
		a := i.readReg(ops[1], state)
		b := i.readReg(ops[2], state)
		i.writeReg(ops[0], f(a, b), state)
		state.PC++

		return nil
	}
}

func (i instEmulator) runALUImm(
	f func(a, b uint32) uint32,
) func([]isa.Operand, *coreState) error {
	return func(ops []isa.Operand, state *coreState) error {
		a := i.readReg(ops[1], state)
		i.writeReg(ops[0], f(a, uint32(ops[2].Value)), state)
		state.PC++

		return nil
	}
}

func (i instEmulator) runNot(ops []isa.Operand, state *coreState) error {
	i.writeReg(ops[0], ^i.readReg(ops[1], state), state)
	state.PC++

	return nil
}

func (i instEmulator) runLi(ops []isa.Operand, state *coreState) error {
	i.writeReg(ops[0], uint32(ops[1].Value), state)
	state.PC++

	return nil
}

// LD rd, ra loads the word at the address held in ra.
func (i instEmulator) runLd(ops []isa.Operand, state *coreState) error {
	data, err := state.Memory.Read(i.readReg(ops[1], state))
	if err != nil {
		return err
	}

	i.writeReg(ops[0], data, state)
	state.PC++

	return nil
}

// SD rs, ra stores rs at the address held in ra.
func (i instEmulator) runSd(ops []isa.Operand, state *coreState) error {
	err := state.Memory.Write(i.readReg(ops[1], state), i.readReg(ops[0], state))
	if err != nil {
		return err
	}

	state.PC++

	return nil
}

func (i instEmulator) runJr(ops []isa.Operand, state *coreState) error {
	i.Jump(uint32(ops[0].Value), state)
	return nil
}

func (i instEmulator) runBranch(
	taken func(a, b uint32) bool,
) func([]isa.Operand, *coreState) error {
	return func(ops []isa.Operand, state *coreState) error {
		a := i.readReg(ops[0], state)
		b := i.readReg(ops[1], state)

		if taken(a, b) {
			i.Jump(uint32(ops[2].Value), state)
		} else {
			state.PC++
		}

		return nil
	}
}

// The "V" branches compare a register against an immediate value.
func (i instEmulator) runBranchValue(
	taken func(a, v uint32) bool,
) func([]isa.Operand, *coreState) error {
	return func(ops []isa.Operand, state *coreState) error {
		a := i.readReg(ops[0], state)

		if taken(a, uint32(ops[1].Value)) {
			i.Jump(uint32(ops[2].Value), state)
		} else {
			state.PC++
		}

		return nil
	}
}

func (i instEmulator) Jump(dst uint32, state *coreState) {
	state.PC = dst
}

func (i instEmulator) runEnd(state *coreState) {
	state.Halted = true
}
