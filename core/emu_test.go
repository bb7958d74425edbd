package core

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/joha7809/Chisel-Erode/isa"
)

func mkInst(op isa.Opcode, operands ...isa.Operand) isa.Instruction {
	return isa.Instruction{Opcode: op, Operands: operands}
}

var _ = Describe("InstEmulator", func() {
	var (
		ie instEmulator
		s  coreState
	)

	BeforeEach(func() {
		ie = instEmulator{}
		s = coreState{
			PC:        0,
			Registers: make([]uint32, isa.RegisterCount),
			Memory:    NewWordMemory(16),
		}
	})

	Context("Arithmetic Instructions", func() {
		DescribeTable("register operations",
			func(op isa.Opcode, a, b, expected uint32) {
				s.Registers[2] = a
				s.Registers[3] = b

				err := ie.RunInst(mkInst(op, isa.Reg(1), isa.Reg(2), isa.Reg(3)), &s)

				Expect(err).NotTo(HaveOccurred())
				Expect(s.Registers[1]).To(Equal(expected))
				Expect(s.PC).To(Equal(uint32(1)))
			},
			Entry("ADD", isa.OpADD, uint32(5), uint32(7), uint32(12)),
			Entry("ADD wraps", isa.OpADD, uint32(0xFFFFFFFF), uint32(1), uint32(0)),
			Entry("SUB", isa.OpSUB, uint32(7), uint32(5), uint32(2)),
			Entry("SUB wraps", isa.OpSUB, uint32(0), uint32(1), uint32(0xFFFFFFFF)),
			Entry("MULT", isa.OpMULT, uint32(6), uint32(7), uint32(42)),
			Entry("OR", isa.OpOR, uint32(0b1010), uint32(0b0101), uint32(0b1111)),
			Entry("AND", isa.OpAND, uint32(0b1110), uint32(0b0111), uint32(0b0110)),
		)

		It("should add an immediate", func() {
			s.Registers[2] = 40
			Expect(ie.RunInst(mkInst(isa.OpADDI, isa.Reg(1), isa.Reg(2), isa.Imm(2)), &s)).To(Succeed())
			Expect(s.Registers[1]).To(Equal(uint32(42)))
		})

		It("should subtract an immediate", func() {
			s.Registers[1] = 10
			Expect(ie.RunInst(mkInst(isa.OpSUBI, isa.Reg(1), isa.Reg(1), isa.Imm(3)), &s)).To(Succeed())
			Expect(s.Registers[1]).To(Equal(uint32(7)))
		})

		It("should invert a register", func() {
			s.Registers[2] = 0x0000FFFF
			Expect(ie.RunInst(mkInst(isa.OpNOT, isa.Reg(1), isa.Reg(2)), &s)).To(Succeed())
			Expect(s.Registers[1]).To(Equal(uint32(0xFFFF0000)))
		})

		It("should load an immediate", func() {
			Expect(ie.RunInst(mkInst(isa.OpLI, isa.Reg(4), isa.Imm(1<<22-1)), &s)).To(Succeed())
			Expect(s.Registers[4]).To(Equal(uint32(1<<22 - 1)))
		})
	})

	Context("Memory Instructions", func() {
		It("should store and load through an address register", func() {
			s.Registers[1] = 1234
			s.Registers[2] = 5

			Expect(ie.RunInst(mkInst(isa.OpSD, isa.Reg(1), isa.Reg(2)), &s)).To(Succeed())
			Expect(ie.RunInst(mkInst(isa.OpLD, isa.Reg(3), isa.Reg(2)), &s)).To(Succeed())

			Expect(s.Registers[3]).To(Equal(uint32(1234)))
			Expect(s.PC).To(Equal(uint32(2)))
		})

		It("should fail on an address outside memory", func() {
			s.Registers[2] = 16

			err := ie.RunInst(mkInst(isa.OpLD, isa.Reg(3), isa.Reg(2)), &s)

			Expect(errors.Is(err, ErrBadAddress)).To(BeTrue())
			Expect(s.PC).To(Equal(uint32(0)))
		})
	})

	Context("Control Instructions", func() {
		It("should jump unconditionally", func() {
			Expect(ie.RunInst(mkInst(isa.OpJR, isa.Imm(9)), &s)).To(Succeed())
			Expect(s.PC).To(Equal(uint32(9)))
		})

		DescribeTable("register comparisons",
			func(op isa.Opcode, a, b uint32, taken bool) {
				s.Registers[1] = a
				s.Registers[2] = b

				Expect(ie.RunInst(mkInst(op, isa.Reg(1), isa.Reg(2), isa.Imm(7)), &s)).To(Succeed())

				if taken {
					Expect(s.PC).To(Equal(uint32(7)))
				} else {
					Expect(s.PC).To(Equal(uint32(1)))
				}
			},
			Entry("JEQ taken", isa.OpJEQ, uint32(3), uint32(3), true),
			Entry("JEQ not taken", isa.OpJEQ, uint32(3), uint32(4), false),
			Entry("JGT taken", isa.OpJGT, uint32(4), uint32(3), true),
			Entry("JGT not taken on equal", isa.OpJGT, uint32(3), uint32(3), false),
		)

		DescribeTable("value comparisons",
			func(op isa.Opcode, a uint32, v uint64, taken bool) {
				s.Registers[1] = a

				Expect(ie.RunInst(mkInst(op, isa.Reg(1), isa.Imm(v), isa.Imm(7)), &s)).To(Succeed())

				if taken {
					Expect(s.PC).To(Equal(uint32(7)))
				} else {
					Expect(s.PC).To(Equal(uint32(1)))
				}
			},
			Entry("JLTV taken", isa.OpJLTV, uint32(2), uint64(3), true),
			Entry("JLTV not taken on equal", isa.OpJLTV, uint32(3), uint64(3), false),
			Entry("JETV taken", isa.OpJETV, uint32(0), uint64(0), true),
			Entry("JETV not taken", isa.OpJETV, uint32(1), uint64(0), false),
		)

		It("should do nothing on NOP", func() {
			Expect(ie.RunInst(mkInst(isa.OpNOP), &s)).To(Succeed())
			Expect(s.PC).To(Equal(uint32(1)))
			Expect(s.Halted).To(BeFalse())
		})

		It("should halt on END without moving the PC", func() {
			s.PC = 4
			Expect(ie.RunInst(mkInst(isa.OpEND), &s)).To(Succeed())
			Expect(s.Halted).To(BeTrue())
			Expect(s.PC).To(Equal(uint32(4)))
		})
	})

	It("should panic on operands that do not match the format", func() {
		Expect(func() {
			_ = ie.RunInst(mkInst(isa.OpADD, isa.Reg(1)), &s)
		}).To(Panic())
	})
})
