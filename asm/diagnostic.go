package asm

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	errorColors = text.Colors{text.FgHiRed, text.Bold}
	caretColors = text.Colors{text.FgHiGreen, text.Bold}
	nameColors  = text.Colors{text.Bold}
)

// Column returns the one-based column of the byte offset in source, counted
// in runes.
func Column(source string, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}

	return utf8.RuneCountInString(source[lineStart(source, offset):offset]) + 1
}

func lineStart(source string, offset int) int {
	return strings.LastIndexByte(source[:offset], '\n') + 1
}

func lineEnd(source string, offset int) int {
	end := strings.IndexByte(source[offset:], '\n')
	if end < 0 {
		return len(source)
	}

	return offset + end
}

// Render writes err the way a compiler reports it:
//
//	prog.asm:3:9: error: undefined label "loop"
//	    JR loop
//	       ^^^^
//
// Errors without a source location are written on a single line.
func Render(w io.Writer, name, source string, err error, color bool) {
	paint := func(c text.Colors, s string) string {
		if !color {
			return s
		}
		return c.Sprint(s)
	}

	var located LocatedError
	if !errors.As(err, &located) {
		fmt.Fprintf(w, "%s: %s %v\n",
			paint(nameColors, name), paint(errorColors, "error:"), err)
		return
	}

	span := located.Location()
	start := min(span.Start, len(source))
	from := lineStart(source, start)
	to := lineEnd(source, start)
	line := source[from:to]

	fmt.Fprintf(w, "%s %s %v\n",
		paint(nameColors, fmt.Sprintf("%s:%d:%d:", name, span.Line+1, Column(source, start))),
		paint(errorColors, "error:"), err)
	fmt.Fprintf(w, "    %s\n", line)

	width := utf8.RuneCountInString(source[start:max(min(span.End, to), start)])
	if width < 1 {
		width = 1
	}

	fmt.Fprintf(w, "    %s%s\n",
		indent(line[:start-from]), paint(caretColors, strings.Repeat("^", width)))
}

// indent keeps tabs so the caret lines up under the source line.
func indent(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}

	return b.String()
}
