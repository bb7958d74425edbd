package asm_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/joha7809/Chisel-Erode/asm"
	"github.com/joha7809/Chisel-Erode/bitfield"
	"github.com/joha7809/Chisel-Erode/codec"
)

var _ = Describe("Assemble", func() {
	It("should encode a single instruction", func() {
		_, words, err := asm.Assemble("ADD R1, R2, R3")

		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal([]uint32{0x08443000}))
	})

	It("should encode label targets as instruction indices", func() {
		prog, words, err := asm.Assemble(
			"A: ADD R1,R2,R3 \n B: SUB R1,R2,R3 \n JR A")

		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Labels).To(Equal(asm.Labels{"A": 0, "B": 1}))
		Expect(words).To(HaveLen(3))
		Expect(bitfield.Get(words[2], 26, 0)).To(Equal(uint32(0)))
		Expect(bitfield.Get(words[2], 31, 27)).To(Equal(uint32(0b01011)))
	})

	It("should locate immediates that do not fit", func() {
		_, _, err := asm.Assemble("NOP\nLI R1, 4194304")

		var failure *asm.EncodeFailure
		Expect(errors.As(err, &failure)).To(BeTrue())
		Expect(failure.Index).To(Equal(1))
		Expect(failure.Span).To(Equal(asm.Span{Start: 4, End: 18, Line: 1}))

		var imm *codec.ImmediateOutOfRangeError
		Expect(errors.As(err, &imm)).To(BeTrue())
		Expect(imm.Bits).To(Equal(uint8(22)))
		Expect(imm.Value).To(Equal(uint64(4194304)))
	})

	It("should report the encoder error itself", func() {
		_, _, err := asm.Assemble("JR 134217728")

		var failure *asm.EncodeFailure
		Expect(errors.As(err, &failure)).To(BeTrue())
		Expect(failure.Index).To(Equal(0))
		Expect(failure.Err).To(BeAssignableToTypeOf(&codec.ImmediateOutOfRangeError{}))
		Expect(err.Error()).To(Equal("immediate value 134217728 does not fit in 27 bits"))
	})

	It("should produce the same words as the program encoder", func() {
		prog, words, err := asm.Assemble("LI R1, 7\nADD R2, R1, R1\nEND")
		Expect(err).NotTo(HaveOccurred())

		expected, err := codec.EncodeProgram(prog.Instructions)
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal(expected))
	})

	It("should round trip through the decoder", func() {
		prog, words, err := asm.Assemble(`
			LI R1, 100
			loop: SUBI R1, R1, 1
			JETV R1, 0, done
			JR loop
			done: SD R1, R2
			END
		`)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := codec.DecodeProgram(words)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded).To(Equal(prog.Instructions))
	})
})

var _ = Describe("Render", func() {
	It("should underline the offending text", func() {
		source := "LI R1, 5\nJR loop\n"
		_, _, err := asm.Assemble(source)

		var buf bytes.Buffer
		asm.Render(&buf, "prog.asm", source, err, false)

		Expect(buf.String()).To(Equal(
			"prog.asm:2:4: error: undefined label \"loop\"\n" +
				"    JR loop\n" +
				"       ^^^^\n"))
	})

	It("should keep tabs when aligning the caret", func() {
		source := "\tADD R1, R2"
		_, _, err := asm.Assemble(source)

		var buf bytes.Buffer
		asm.Render(&buf, "tab.asm", source, err, false)

		Expect(buf.String()).To(HavePrefix("tab.asm:1:2: error: R3 format takes 3 operands, found 2\n"))
		Expect(buf.String()).To(HaveSuffix("    \t^^^^^^^^^^\n"))
	})

	It("should print errors without a location on one line", func() {
		var buf bytes.Buffer
		asm.Render(&buf, "prog.asm", "", errors.New("cannot read file"), false)

		Expect(buf.String()).To(Equal("prog.asm: error: cannot read file\n"))
	})

	It("should colour the output when asked", func() {
		text.EnableColors()
		source := "JR x"
		_, _, err := asm.Assemble(source)

		var plain, colored bytes.Buffer
		asm.Render(&plain, "p.asm", source, err, false)
		asm.Render(&colored, "p.asm", source, err, true)

		Expect(colored.String()).To(ContainSubstring("\x1b["))
		Expect(plain.String()).NotTo(ContainSubstring("\x1b["))
	})

	It("should compute one-based columns", func() {
		Expect(asm.Column("ab\ncd", 4)).To(Equal(2))
		Expect(asm.Column("ab", 0)).To(Equal(1))
	})

	It("should count columns in runes", func() {
		Expect(asm.Column("é\nxé", 4)).To(Equal(2))
		Expect(asm.Column("é\nxé", 6)).To(Equal(3))
	})

	It("should align the caret after non-ASCII text", func() {
		source := "é: JR lööp"
		_, _, err := asm.Assemble(source)

		var buf bytes.Buffer
		asm.Render(&buf, "u.asm", source, err, false)

		Expect(buf.String()).To(Equal(
			"u.asm:1:7: error: undefined label \"lööp\"\n" +
				"    é: JR lööp\n" +
				"          ^^^^\n"))
	})
})
