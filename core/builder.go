package core

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/joha7809/Chisel-Erode/isa"
)

// Builder can create new cores.
type Builder struct {
	engine    sim.Engine
	freq      sim.Freq
	memory    Memory
	maxCycles uint64
}

// MakeBuilder returns a builder with a 1 GHz clock, 1024 words of data
// memory and a budget of 100000 cycles.
func MakeBuilder() Builder {
	return Builder{
		freq:      1 * sim.GHz,
		maxCycles: 100000,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithMemory sets the data memory. A zero-filled WordMemory of 1024 words is
// used if none is given.
func (b Builder) WithMemory(memory Memory) Builder {
	b.memory = memory
	return b
}

// WithMaxCycles limits how many instructions the core executes before it
// faults. Zero means no limit.
func (b Builder) WithMaxCycles(n uint64) Builder {
	b.maxCycles = n
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	if b.engine == nil {
		panic("core builder needs an engine")
	}

	c := &Core{maxCycles: b.maxCycles}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.state = coreState{
		Registers: make([]uint32, isa.RegisterCount),
		Memory:    b.memory,
	}

	if c.state.Memory == nil {
		c.state.Memory = NewWordMemory(1024)
	}

	return c
}
