package core_test

import (
	"bytes"
	"errors"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/joha7809/Chisel-Erode/asm"
	"github.com/joha7809/Chisel-Erode/core"
)

func assemble(source string) []uint32 {
	_, words, err := asm.Assemble(source)
	Expect(err).NotTo(HaveOccurred())
	return words
}

const sumProgram = `
	LI R1, 10        # counter
	LI R2, 0         # sum
loop:
	ADD R2, R2, R1
	SUBI R1, R1, 1
	JETV R1, 0, done
	JR loop
done:
	END
`

var _ = Describe("Core", func() {
	var (
		mockCtrl *gomock.Controller
		engine   sim.Engine
		c        *core.Core
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = sim.NewSerialEngine()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should run a program to END", func() {
		c = core.MakeBuilder().WithEngine(engine).Build("Core")
		c.MapProgram(assemble(sumProgram))

		Expect(engine.Run()).To(Succeed())

		Expect(c.Halted()).To(BeTrue())
		Expect(c.Fault()).NotTo(HaveOccurred())
		Expect(c.ReadRegister(2)).To(Equal(uint32(55)))
		Expect(c.ReadRegister(1)).To(Equal(uint32(0)))
		Expect(c.Cycles()).To(Equal(uint64(42)))
		Expect(c.PC()).To(Equal(uint32(6)))
	})

	It("should go through data memory", func() {
		memory := NewMockMemory(mockCtrl)
		memory.EXPECT().Write(uint32(3), uint32(7)).Return(nil)
		memory.EXPECT().Read(uint32(3)).Return(uint32(99), nil)

		c = core.MakeBuilder().
			WithEngine(engine).
			WithMemory(memory).
			Build("Core")
		c.MapProgram(assemble("LI R1, 7\nLI R2, 3\nSD R1, R2\nLD R3, R2\nEND"))

		Expect(engine.Run()).To(Succeed())

		Expect(c.Fault()).NotTo(HaveOccurred())
		Expect(c.ReadRegister(3)).To(Equal(uint32(99)))
	})

	It("should fault when memory fails", func() {
		busErr := errors.New("bus error")
		memory := NewMockMemory(mockCtrl)
		memory.EXPECT().Read(uint32(0)).Return(uint32(0), busErr)

		c = core.MakeBuilder().
			WithEngine(engine).
			WithMemory(memory).
			Build("Core")
		c.MapProgram(assemble("NOP\nLD R1, R0\nEND"))

		Expect(engine.Run()).To(Succeed())

		var fault *core.Fault
		Expect(errors.As(c.Fault(), &fault)).To(BeTrue())
		Expect(fault.PC).To(Equal(uint32(1)))
		Expect(errors.Is(fault, busErr)).To(BeTrue())
		Expect(c.Halted()).To(BeTrue())
	})

	It("should reset state when a program is mapped again", func() {
		c = core.MakeBuilder().WithEngine(engine).Build("Core")
		c.MapProgram(assemble("LI R5, 9\nEND"))
		Expect(engine.Run()).To(Succeed())
		Expect(c.ReadRegister(5)).To(Equal(uint32(9)))

		c.MapProgram(assemble("END"))
		Expect(engine.Run()).To(Succeed())
		Expect(c.ReadRegister(5)).To(Equal(uint32(0)))
		Expect(c.Cycles()).To(Equal(uint64(1)))
	})

	It("should run a second program after the engine finished", func() {
		c = core.MakeBuilder().WithEngine(engine).Build("Core")
		c.MapProgram(assemble("END"))
		Expect(engine.Run()).To(Succeed())
		Expect(c.Halted()).To(BeTrue())

		c.MapProgram(assemble("NOP\nEND"))
		Expect(c.Halted()).To(BeFalse())
		Expect(engine.Run()).To(Succeed())

		Expect(c.Halted()).To(BeTrue())
		Expect(c.Cycles()).To(Equal(uint64(2)))
		Expect(c.PC()).To(Equal(uint32(1)))
		Expect(c.Fault()).NotTo(HaveOccurred())
	})

	It("should let callers preset registers", func() {
		c = core.MakeBuilder().WithEngine(engine).Build("Core")
		c.MapProgram(assemble("ADD R3, R1, R2\nEND"))
		c.WriteRegister(1, 20)
		c.WriteRegister(2, 22)

		Expect(engine.Run()).To(Succeed())
		Expect(c.ReadRegister(3)).To(Equal(uint32(42)))
		Expect(c.Registers()).To(HaveLen(32))
	})

	It("should print its state", func() {
		c = core.MakeBuilder().WithEngine(engine).Build("Core")
		c.MapProgram(assemble("LI R9, 77\nEND"))
		Expect(engine.Run()).To(Succeed())

		var buf bytes.Buffer
		c.WriteState(&buf)

		Expect(buf.String()).To(ContainSubstring("Registers"))
		Expect(buf.String()).To(ContainSubstring("halted"))
		Expect(buf.String()).To(ContainSubstring("77"))
	})

	It("should refuse to build without an engine", func() {
		Expect(func() { core.MakeBuilder().Build("Core") }).To(Panic())
	})
})

var _ = Describe("Execute", func() {
	It("should return the finished core", func() {
		c, err := core.Execute(assemble(sumProgram), core.RunOptions{})

		Expect(err).NotTo(HaveOccurred())
		Expect(c.ReadRegister(2)).To(Equal(uint32(55)))
	})

	It("should fault when the PC runs off the program", func() {
		c, err := core.Execute(assemble("NOP\nNOP"), core.RunOptions{})

		Expect(errors.Is(err, core.ErrPCOutOfRange)).To(BeTrue())
		Expect(c.PC()).To(Equal(uint32(2)))
		Expect(c.Cycles()).To(Equal(uint64(2)))
	})

	It("should fault on a word that does not decode", func() {
		_, err := core.Execute([]uint32{0x88000000}, core.RunOptions{})

		Expect(errors.Is(err, core.ErrBadInstruction)).To(BeTrue())
	})

	It("should fault on a store outside memory", func() {
		_, err := core.Execute(assemble("LI R1, 10\nSD R1, R1\nEND"),
			core.RunOptions{Memory: core.NewWordMemory(4)})

		Expect(errors.Is(err, core.ErrBadAddress)).To(BeTrue())
	})

	It("should stop an endless loop at the cycle limit", func() {
		c, err := core.Execute(assemble("loop: JR loop"),
			core.RunOptions{MaxCycles: 50})

		Expect(errors.Is(err, core.ErrCycleLimit)).To(BeTrue())
		Expect(c.Cycles()).To(Equal(uint64(50)))
	})
})
