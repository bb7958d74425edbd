package asm

import "fmt"

// Span locates a piece of source text. Start and End are byte offsets into
// the source, End exclusive. Line is zero-based.
type Span struct {
	Start int
	End   int
	Line  int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:[%d,%d)", s.Line+1, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other. The line is
// taken from whichever span starts first.
func (s Span) Cover(other Span) Span {
	out := s
	if other.Start < out.Start {
		out.Start = other.Start
		out.Line = other.Line
	}

	if other.End > out.End {
		out.End = other.End
	}

	return out
}
