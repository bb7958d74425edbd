// Package core is a reference core for the instruction set. It fetches,
// decodes and executes one instruction word per cycle, driven by an akita
// ticking component.
package core

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/joha7809/Chisel-Erode/codec"
)

type Core struct {
	*sim.TickingComponent

	state     coreState
	emu       instEmulator
	maxCycles uint64
}

// MapProgram loads code, resets the registers and the PC, and schedules the
// first tick on the next cycle. The engine may already have run past the
// current time, so a tick at the current time would be dropped.
func (c *Core) MapProgram(code []uint32) {
	c.state.Code = code
	c.state.PC = 0
	c.state.Cycle = 0
	c.state.Halted = false
	c.state.Fault = nil

	for i := range c.state.Registers {
		c.state.Registers[i] = 0
	}

	Trace("MapProgram",
		"Core", c.Name(),
		"Words", len(code),
	)

	c.TickLater()
}

// Tick runs the program for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	if c.state.Halted {
		return false
	}

	c.step()

	return true
}

func (c *Core) step() {
	s := &c.state

	if c.maxCycles > 0 && s.Cycle >= c.maxCycles {
		c.fault(ErrCycleLimit)
		return
	}

	if int(s.PC) >= len(s.Code) {
		c.fault(ErrPCOutOfRange)
		return
	}

	inst, ok := codec.Decode(s.Code[s.PC])
	if !ok {
		c.fault(ErrBadInstruction)
		return
	}

	Trace("Inst",
		"Time", float64(c.Engine.CurrentTime()*1e9),
		"Core", c.Name(),
		"Cycle", s.Cycle,
		"PC", s.PC,
		"Opcode", inst.Opcode.String(),
		"Inst", inst.String(),
	)

	err := c.emu.RunInst(inst, s)
	s.Cycle++

	if err != nil {
		c.fault(err)
	}
}

func (c *Core) fault(err error) {
	c.state.Halted = true
	c.state.Fault = &Fault{PC: c.state.PC, Cycle: c.state.Cycle, Err: err}

	Trace("Fault",
		"Core", c.Name(),
		"PC", c.state.PC,
		"Cycle", c.state.Cycle,
		"Error", err,
	)
}

// PC returns the index of the next instruction.
func (c *Core) PC() uint32 {
	return c.state.PC
}

// Cycles returns the number of instructions executed.
func (c *Core) Cycles() uint64 {
	return c.state.Cycle
}

// Halted reports whether the core has stopped, by END or by a fault.
func (c *Core) Halted() bool {
	return c.state.Halted
}

// Fault returns the *Fault that stopped the core, or nil.
func (c *Core) Fault() error {
	return c.state.Fault
}

// ReadRegister returns the value of register n.
func (c *Core) ReadRegister(n int) uint32 {
	return c.state.Registers[n]
}

// WriteRegister sets register n, e.g. to pass arguments before a run.
func (c *Core) WriteRegister(n int, value uint32) {
	c.state.Registers[n] = value
}

// Registers returns a copy of the register file.
func (c *Core) Registers() []uint32 {
	regs := make([]uint32, len(c.state.Registers))
	copy(regs, c.state.Registers)

	return regs
}

// Memory returns the data memory.
func (c *Core) Memory() Memory {
	return c.state.Memory
}
