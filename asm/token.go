package asm

import (
	"fmt"

	"github.com/joha7809/Chisel-Erode/isa"
)

// TokenKind is the lexical class of a token.
type TokenKind uint8

const (
	TokenOpcode TokenKind = iota
	TokenRegister
	TokenImmediate
	TokenLabelDef
	TokenLabelRef
	TokenComma
	TokenComment
	TokenTerminator
)

var tokenKindNames = [...]string{
	TokenOpcode:     "Opcode",
	TokenRegister:   "Register",
	TokenImmediate:  "Immediate",
	TokenLabelDef:   "LabelDef",
	TokenLabelRef:   "LabelRef",
	TokenComma:      "Comma",
	TokenComment:    "Comment",
	TokenTerminator: "Terminator",
}

func (k TokenKind) String() string {
	if int(k) >= len(tokenKindNames) {
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}

	return tokenKindNames[k]
}

// Token is one lexical unit of the source.
type Token struct {
	Kind TokenKind
	Span Span

	// Text is the label name for label tokens, the body after '#' for
	// comments, and the source text for everything else.
	Text string

	Opcode   isa.Opcode // TokenOpcode
	Value    uint64     // TokenRegister, TokenImmediate
	Negative bool       // TokenImmediate written with a leading '-'
}

func (t Token) String() string {
	switch t.Kind {
	case TokenOpcode:
		return fmt.Sprintf("Opcode(%s)", t.Opcode)
	case TokenRegister:
		return fmt.Sprintf("Register(R%d)", t.Value)
	case TokenImmediate:
		if t.Negative {
			return fmt.Sprintf("Immediate(-%d)", t.Value)
		}
		return fmt.Sprintf("Immediate(%d)", t.Value)
	case TokenLabelDef, TokenLabelRef, TokenComment:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}
