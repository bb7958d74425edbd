package verify

import (
	"fmt"

	"github.com/joha7809/Chisel-Erode/isa"
)

// RunLint performs static lint checks on a program.
// It validates control-flow structure (STRUCT) and register use (DATAFLOW).
// Returns a list of issues found, or empty list if no issues.
func RunLint(prog isa.Program) []Issue {
	var issues []Issue

	if len(prog) == 0 {
		return []Issue{{
			Type:    IssueStruct,
			Index:   -1,
			Message: "Program is empty",
		}}
	}

	// STRUCT: jump targets
	for i, inst := range prog {
		target, ok := jumpTarget(inst)
		if !ok || target < uint64(len(prog)) {
			continue
		}

		issues = append(issues, Issue{
			Type:  IssueStruct,
			Index: i,
			Message: fmt.Sprintf("%s jumps to %d, outside the program of %d instructions",
				inst.Opcode, target, len(prog)),
			Details: map[string]interface{}{"target": target},
		})
	}

	// STRUCT: END
	hasEnd := false
	for _, inst := range prog {
		if inst.Opcode == isa.OpEND {
			hasEnd = true
			break
		}
	}

	if !hasEnd {
		issues = append(issues, Issue{
			Type:    IssueStruct,
			Index:   -1,
			Message: "Program has no END instruction",
		})
	}

	reachable := reachability(prog)

	// STRUCT: unreachable code and falling off the end
	for i, inst := range prog {
		if !reachable[i] {
			issues = append(issues, Issue{
				Type:    IssueStruct,
				Index:   i,
				Message: fmt.Sprintf("%s is unreachable", inst),
			})
			continue
		}

		if i == len(prog)-1 && inst.Opcode != isa.OpEND && inst.Opcode != isa.OpJR {
			issues = append(issues, Issue{
				Type:    IssueStruct,
				Index:   i,
				Message: fmt.Sprintf("Execution runs past the last instruction %s", inst),
			})
		}
	}

	issues = append(issues, checkDataflow(prog, reachable)...)

	return issues
}

func reachability(prog isa.Program) []bool {
	reachable := make([]bool, len(prog))
	work := []int{0}
	reachable[0] = true

	for len(work) > 0 {
		i := work[len(work)-1]
		work = work[:len(work)-1]

		for _, next := range successors(prog, i) {
			if next >= uint64(len(prog)) || reachable[next] {
				continue
			}

			reachable[next] = true
			work = append(work, int(next))
		}
	}

	return reachable
}

// checkDataflow reports reads of registers that are not written on every
// path from the first instruction. The core starts with all registers at
// zero, so such reads are legal but usually a mistake.
func checkDataflow(prog isa.Program, reachable []bool) []Issue {
	var issues []Issue

	// written[i] holds the registers written on every path into i.
	written := make([]uint32, len(prog))
	for i := range written {
		written[i] = ^uint32(0)
	}
	written[0] = 0

	for changed := true; changed; {
		changed = false

		for i, inst := range prog {
			if !reachable[i] {
				continue
			}

			_, writes := regUse(inst)
			out := written[i] | writes

			for _, next := range successors(prog, i) {
				if next >= uint64(len(prog)) {
					continue
				}

				merged := written[next] & out
				if merged != written[next] {
					written[next] = merged
					changed = true
				}
			}
		}
	}

	for i, inst := range prog {
		if !reachable[i] {
			continue
		}

		reads, _ := regUse(inst)
		undefined := reads &^ written[i]

		for reg := 0; reg < isa.RegisterCount; reg++ {
			if undefined&(1<<reg) == 0 {
				continue
			}

			issues = append(issues, Issue{
				Type:    IssueDataflow,
				Index:   i,
				Message: fmt.Sprintf("%s reads R%d before it is written", inst, reg),
				Details: map[string]interface{}{"register": reg},
			})
		}
	}

	return issues
}
