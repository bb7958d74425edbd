package verify_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/joha7809/Chisel-Erode/core"
	"github.com/joha7809/Chisel-Erode/isa"
	"github.com/joha7809/Chisel-Erode/verify"
)

var _ = Describe("VerificationReport", func() {
	It("should pass a program that runs to END", func() {
		report := verify.GenerateReport(program("LI R1, 20\nADDI R2, R1, 22\nEND"),
			core.RunOptions{})

		Expect(report.Passed()).To(BeTrue())
		Expect(report.Cycles).To(Equal(uint64(3)))
		Expect(report.Registers[2]).To(Equal(uint32(42)))

		var buf bytes.Buffer
		report.WriteReport(&buf)
		Expect(buf.String()).To(ContainSubstring("PROGRAM PASSED ALL CHECKS"))
		Expect(buf.String()).To(ContainSubstring("R2  = 42"))
	})

	It("should fail a program that never ends", func() {
		report := verify.GenerateReport(program("loop: JR loop"),
			core.RunOptions{MaxCycles: 100})

		Expect(report.Passed()).To(BeFalse())
		Expect(report.StructIssues).To(HaveLen(1))
		Expect(errors.Is(report.SimulationErr, core.ErrCycleLimit)).To(BeTrue())

		var buf bytes.Buffer
		report.WriteReport(&buf)
		Expect(buf.String()).To(ContainSubstring("STRUCT ISSUES (1)"))
		Expect(buf.String()).To(ContainSubstring("PROGRAM FAILED VERIFICATION"))
	})

	It("should treat dataflow issues as warnings", func() {
		report := verify.GenerateReport(program("ADD R1, R2, R3\nEND"),
			core.RunOptions{})

		Expect(report.DataflowIssues).To(HaveLen(2))
		Expect(report.Passed()).To(BeTrue())
	})

	It("should report instructions that do not encode", func() {
		report := verify.GenerateReport(isa.Program{
			{Opcode: isa.OpLI, Operands: []isa.Operand{isa.Reg(1), isa.Imm(1 << 30)}},
			{Opcode: isa.OpEND},
		}, core.RunOptions{})

		Expect(report.SimulationOK).To(BeFalse())
		Expect(report.SimulationErr).To(HaveOccurred())
	})

	It("should save the report to a file", func() {
		report := verify.GenerateReport(program("END"), core.RunOptions{})
		path := filepath.Join(GinkgoT().TempDir(), "report.txt")

		Expect(report.SaveReportToFile(path)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("VERIFICATION SUMMARY"))
	})
})
