// Package asm turns assembly source into instructions: a lexer, a parser
// that resolves labels to instruction indices, and a validator that checks
// every instruction against the operand pattern of its format.
//
// Labels resolve to instruction indices, not byte addresses. Every error
// carries the span of the source text it is about; Render prints it with
// the offending line and a caret underline.
package asm

import (
	"errors"
	"log/slog"

	"github.com/joha7809/Chisel-Erode/codec"
)

// Assemble runs the whole pipeline on source and returns the parsed program
// together with its machine words. Encoding failures come back as
// *EncodeFailure so they can be located like parse errors.
func Assemble(source string) (*Program, []uint32, error) {
	tokens := Lex(source)
	slog.Debug("Lexed source", "tokens", len(tokens))

	prog, err := ParseProgram(tokens)
	if err != nil {
		return nil, nil, err
	}

	slog.Debug("Parsed program",
		"instructions", len(prog.Instructions), "labels", len(prog.Labels))

	words, err := codec.EncodeProgram(prog.Instructions)
	if err != nil {
		var inst *codec.InstructionError
		if errors.As(err, &inst) {
			return nil, nil, &EncodeFailure{
				Index: inst.Index,
				Span:  prog.Spans[inst.Index],
				Err:   inst.Err,
			}
		}

		return nil, nil, err
	}

	return prog, words, nil
}
