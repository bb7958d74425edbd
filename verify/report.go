package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joha7809/Chisel-Erode/codec"
	"github.com/joha7809/Chisel-Erode/core"
	"github.com/joha7809/Chisel-Erode/isa"
)

// VerificationReport represents a complete verification report
type VerificationReport struct {
	InstructionCount int
	LintIssues       []Issue
	StructIssues     []Issue
	DataflowIssues   []Issue
	SimulationErr    error
	SimulationOK     bool
	Cycles           uint64
	Registers        []uint32
	Program          isa.Program
}

// GenerateReport runs lint and then executes the program on the reference
// core.
func GenerateReport(prog isa.Program, opts core.RunOptions) *VerificationReport {
	report := &VerificationReport{
		InstructionCount: len(prog),
		Program:          prog,
	}

	// Run lint
	report.LintIssues = RunLint(prog)

	// Categorize issues
	for _, issue := range report.LintIssues {
		if issue.Type == IssueStruct {
			report.StructIssues = append(report.StructIssues, issue)
		} else {
			report.DataflowIssues = append(report.DataflowIssues, issue)
		}
	}

	// Run on the core
	words, err := codec.EncodeProgram(prog)
	if err != nil {
		report.SimulationErr = err
		return report
	}

	c, err := core.Execute(words, opts)
	report.SimulationErr = err
	report.SimulationOK = err == nil
	report.Cycles = c.Cycles()
	report.Registers = c.Registers()

	return report
}

// Passed reports whether lint found no STRUCT issues and the program ran to
// END. DATAFLOW issues are warnings.
func (r *VerificationReport) Passed() bool {
	return len(r.StructIssues) == 0 && r.SimulationOK
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)
	dash := strings.Repeat("-", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "PROGRAM VERIFICATION REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\n✓ Loaded %d instructions\n", r.InstructionCount)

	// STAGE 1: LINT
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: STATIC LINT CHECKS")
	fmt.Fprintln(w, separator)

	if len(r.LintIssues) == 0 {
		fmt.Fprintln(w, "✓ No lint issues found!")
	} else {
		fmt.Fprintf(w, "⚠ Found %d lint issues:\n", len(r.LintIssues))

		writeIssues(w, "STRUCT", r.StructIssues, dash)
		writeIssues(w, "DATAFLOW", r.DataflowIssues, dash)
	}

	// STAGE 2: EXECUTION
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: EXECUTION")
	fmt.Fprintln(w, separator)

	if r.SimulationOK {
		fmt.Fprintf(w, "✓ Reached END after %d cycles\n", r.Cycles)
	} else {
		fmt.Fprintf(w, "⚠ Execution error: %v\n", r.SimulationErr)
	}

	for i, v := range r.Registers {
		if v != 0 {
			fmt.Fprintf(w, "  R%-2d = %d\n", i, v)
		}
	}

	// STAGE 3: SUMMARY
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "VERIFICATION SUMMARY")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "Lint Result: %d issues detected (%d STRUCT, %d DATAFLOW)\n",
		len(r.LintIssues), len(r.StructIssues), len(r.DataflowIssues))
	simStatus := "SUCCESS"
	if !r.SimulationOK {
		simStatus = "FAILED: " + r.SimulationErr.Error()
	}
	fmt.Fprintf(w, "Execution Result: %s\n", simStatus)

	if r.Passed() {
		fmt.Fprintln(w, "\n✓ PROGRAM PASSED ALL CHECKS")
	} else {
		fmt.Fprintln(w, "\n⚠ PROGRAM FAILED VERIFICATION")
	}

	fmt.Fprintln(w)
}

func writeIssues(w io.Writer, title string, issues []Issue, dash string) {
	if len(issues) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s ISSUES (%d):\n", title, len(issues))
	fmt.Fprintln(w, dash)

	for _, issue := range issues {
		if issue.Index < 0 {
			fmt.Fprintf(w, "  [program] %s\n", issue.Message)
		} else {
			fmt.Fprintf(w, "  [%d] %s\n", issue.Index, issue.Message)
		}
	}
}

// SaveReportToFile saves the report to a file
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
