// Package verify checks assembled programs before they are run.
//
// Verification has two stages:
//
// 1. Static lint (lint.go) over the resolved instructions
//   - STRUCT checks: jump targets inside the program, an END instruction,
//     unreachable instructions, execution running past the last instruction
//   - DATAFLOW checks: registers read before any path has written them
//
// 2. Execution on the reference core (report.go)
//   - Runs the encoded words until END, a fault or the cycle limit
//
// # Control Flow
//
// Labels resolve to instruction indices, so the target of a jump is simply
// an index into the program:
//
//	JR t            always jumps to t
//	JEQ a, b, t     jumps to t or falls through
//	JGT a, b, t     jumps to t or falls through
//	JLTV r, v, t    jumps to t or falls through
//	JETV r, v, t    jumps to t or falls through
//	END             has no successor
//
// # Usage Example
//
//	prog, _, err := asm.Assemble(source)
//	if err != nil {
//	    return err
//	}
//
//	report := verify.GenerateReport(prog.Instructions, config.Default().RunOptions())
//	report.WriteReport(os.Stdout)
//
// # Limitations
//
// - Memory contents are not tracked; LD results are unknown to the lint
// - Register values are not tracked, so every conditional branch is
//   assumed to go both ways
package verify

import (
	"github.com/joha7809/Chisel-Erode/isa"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueStruct   IssueType = "STRUCT"   // Control-flow structure error
	IssueDataflow IssueType = "DATAFLOW" // Register use error
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType              // STRUCT or DATAFLOW
	Index   int                    // Instruction index, -1 for the whole program
	Message string                 // Human-readable description
	Details map[string]interface{} // Additional structured data
}

// jumpTarget returns the target operand of a jump instruction.
func jumpTarget(inst isa.Instruction) (uint64, bool) {
	switch inst.Opcode {
	case isa.OpJR:
		return inst.Operands[0].Value, true
	case isa.OpJEQ, isa.OpJGT, isa.OpJLTV, isa.OpJETV:
		return inst.Operands[2].Value, true
	default:
		return 0, false
	}
}

// successors lists the instruction indices execution can continue at.
// Indices past the end of the program are included.
func successors(prog isa.Program, index int) []uint64 {
	inst := prog[index]
	next := uint64(index + 1)

	switch inst.Opcode {
	case isa.OpEND:
		return nil
	case isa.OpJR:
		return []uint64{inst.Operands[0].Value}
	}

	if target, ok := jumpTarget(inst); ok {
		return []uint64{next, target}
	}

	return []uint64{next}
}

// regUse returns the registers an instruction reads and the register it
// writes, as bit masks.
func regUse(inst isa.Instruction) (reads, writes uint32) {
	reg := func(i int) uint32 { return 1 << inst.Operands[i].Value }

	switch inst.Opcode {
	case isa.OpADD, isa.OpSUB, isa.OpMULT, isa.OpOR, isa.OpAND:
		return reg(1) | reg(2), reg(0)
	case isa.OpADDI, isa.OpSUBI, isa.OpNOT, isa.OpLD:
		return reg(1), reg(0)
	case isa.OpLI:
		return 0, reg(0)
	case isa.OpSD, isa.OpJEQ, isa.OpJGT:
		return reg(0) | reg(1), 0
	case isa.OpJLTV, isa.OpJETV:
		return reg(0), 0
	default:
		return 0, 0
	}
}
