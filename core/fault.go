package core

import (
	"errors"
	"fmt"
)

// Reasons a core stops without reaching END.
var (
	ErrPCOutOfRange   = errors.New("program counter out of range")
	ErrBadInstruction = errors.New("undecodable instruction")
	ErrBadAddress     = errors.New("memory address out of range")
	ErrCycleLimit     = errors.New("cycle limit reached")
)

// Fault records where a core stopped abnormally.
type Fault struct {
	PC    uint32
	Cycle uint64
	Err   error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at PC %d, cycle %d: %v", f.PC, f.Cycle, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
