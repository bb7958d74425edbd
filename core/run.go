package core

import (
	"github.com/sarchlab/akita/v4/sim"
)

// RunOptions configures Execute. Zero fields keep the builder defaults.
type RunOptions struct {
	Freq      sim.Freq
	Memory    Memory
	MaxCycles uint64
}

// Execute runs code on a new core driven by its own serial engine until the
// core halts. The returned error is the core's fault, if any, or an engine
// error. The core is returned in both cases so its state can be inspected.
func Execute(code []uint32, opts RunOptions) (*Core, error) {
	engine := sim.NewSerialEngine()

	b := MakeBuilder().
		WithEngine(engine).
		WithMemory(opts.Memory)
	if opts.Freq > 0 {
		b = b.WithFreq(opts.Freq)
	}
	if opts.MaxCycles > 0 {
		b = b.WithMaxCycles(opts.MaxCycles)
	}

	c := b.Build("Core")
	c.MapProgram(code)

	if err := engine.Run(); err != nil {
		return c, err
	}

	return c, c.Fault()
}
