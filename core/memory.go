package core

import "fmt"

// Memory is the word-addressed data memory the core loads from and stores to.
type Memory interface {
	Read(addr uint32) (uint32, error)
	Write(addr uint32, data uint32) error
	Size() int
}

// WordMemory is a flat array of words.
type WordMemory struct {
	words []uint32
}

// NewWordMemory creates a zero-filled memory of size words.
func NewWordMemory(size int) *WordMemory {
	return &WordMemory{words: make([]uint32, size)}
}

func (m *WordMemory) check(addr uint32) error {
	if int(addr) >= len(m.words) {
		return fmt.Errorf("%w: address %d, memory has %d words",
			ErrBadAddress, addr, len(m.words))
	}

	return nil
}

// Read returns the word at addr.
func (m *WordMemory) Read(addr uint32) (uint32, error) {
	if err := m.check(addr); err != nil {
		return 0, err
	}

	return m.words[addr], nil
}

// Write stores data at addr.
func (m *WordMemory) Write(addr uint32, data uint32) error {
	if err := m.check(addr); err != nil {
		return err
	}

	m.words[addr] = data

	return nil
}

// Size returns the number of words.
func (m *WordMemory) Size() int {
	return len(m.words)
}
