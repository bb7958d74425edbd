package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// WriteState prints the PC, the cycle count and the register file as tables.
func (c *Core) WriteState(w io.Writer) {
	status := "running"
	switch {
	case c.state.Fault != nil:
		status = c.state.Fault.Error()
	case c.state.Halted:
		status = "halted"
	}

	stateTable := table.NewWriter()
	stateTable.SetOutputMirror(w)
	stateTable.SetTitle(fmt.Sprintf("State of %s", c.Name()))
	stateTable.AppendRow(table.Row{"PC", c.state.PC})
	stateTable.AppendRow(table.Row{"Cycles", c.state.Cycle})
	stateTable.AppendRow(table.Row{"Status", status})
	stateTable.Render()

	regTable := table.NewWriter()
	regTable.SetOutputMirror(w)
	regTable.SetTitle("Registers")
	regTable.AppendHeader(table.Row{"", "+0", "+1", "+2", "+3", "+4", "+5", "+6", "+7"})

	for row := 0; row < len(c.state.Registers); row += 8 {
		regRow := table.Row{fmt.Sprintf("R%d", row)}
		for i := row; i < row+8 && i < len(c.state.Registers); i++ {
			regRow = append(regRow, c.state.Registers[i])
		}
		regTable.AppendRow(regRow)
	}

	regTable.Render()
}
