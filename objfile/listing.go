package objfile

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/joha7809/Chisel-Erode/codec"
)

// WriteListing prints a disassembly table of words. Words that do not
// decode are shown as data.
func WriteListing(w io.Writer, words []uint32) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Addr", "Word", "Instruction"})

	for i, word := range words {
		text := fmt.Sprintf(".word %#08x", word)
		if inst, ok := codec.Decode(word); ok {
			text = inst.String()
		}

		t.AppendRow(table.Row{i, fmt.Sprintf("%08x", word), text})
	}

	t.Render()
}
