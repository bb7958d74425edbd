// Package bitfield reads and writes inclusive bit ranges of a 32-bit
// instruction word. Bit 31 is the most significant bit.
package bitfield

import "fmt"

// Width returns the number of bits in the inclusive range [lo, hi].
func Width(hi, lo uint8) uint8 {
	return hi - lo + 1
}

func mask(hi, lo uint8) uint32 {
	if hi < lo || hi > 31 {
		panic(fmt.Sprintf("invalid bit range [%d:%d]", hi, lo))
	}

	width := uint32(Width(hi, lo))
	if width == 32 {
		return ^uint32(0)
	}

	return (uint32(1) << width) - 1
}

// Get extracts the bits [hi:lo] of word, shifted down to bit 0.
func Get(word uint32, hi, lo uint8) uint32 {
	return (word >> lo) & mask(hi, lo)
}

// Set ORs value into the bits [hi:lo] of word and returns the result. The
// value is masked to the width of the range first, so the bits outside the
// range are never touched.
func Set(word uint32, hi, lo uint8, value uint32) uint32 {
	return word | (value&mask(hi, lo))<<lo
}

// Fits reports whether value can be stored in width bits without loss.
// Widths of 31 bits or more are treated as the full unsigned range.
func Fits(value uint64, width uint8) bool {
	if width >= 31 {
		return true
	}

	return value <= (uint64(1)<<width)-1
}
