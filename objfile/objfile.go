// Package objfile stores assembled programs. An object file is the raw word
// stream with no header, written in one of three encodings.
package objfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format selects how words are written.
type Format string

const (
	// FormatBin writes four bytes per word, most significant byte first.
	FormatBin Format = "bin"
	// FormatHex writes one word per line as eight hex digits.
	FormatHex Format = "hex"
	// FormatText writes one word per line as 32 binary digits.
	FormatText Format = "text"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatBin, FormatHex, FormatText}
}

// ParseFormat checks that name is a supported format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown object format %q (want bin, hex or text)", name)
}

// Write writes words to w in the given format.
func Write(w io.Writer, format Format, words []uint32) error {
	bw := bufio.NewWriter(w)

	switch format {
	case FormatBin:
		var buf [4]byte
		for _, word := range words {
			binary.BigEndian.PutUint32(buf[:], word)
			if _, err := bw.Write(buf[:]); err != nil {
				return err
			}
		}
	case FormatHex:
		for _, word := range words {
			fmt.Fprintf(bw, "%08x\n", word)
		}
	case FormatText:
		for _, word := range words {
			fmt.Fprintf(bw, "%032b\n", word)
		}
	default:
		return fmt.Errorf("unknown object format %q", format)
	}

	return bw.Flush()
}

// Read reads a word stream written by Write. Blank lines in the text formats
// are ignored.
func Read(r io.Reader, format Format) ([]uint32, error) {
	switch format {
	case FormatBin:
		return readBin(r)
	case FormatHex:
		return readLines(r, 16)
	case FormatText:
		return readLines(r, 2)
	default:
		return nil, fmt.Errorf("unknown object format %q", format)
	}
}

func readBin(r io.Reader) ([]uint32, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(data)%4 != 0 {
		return nil, fmt.Errorf("binary object is %d bytes, not a whole number of words",
			len(data))
	}

	words := make([]uint32, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		words = append(words, binary.BigEndian.Uint32(data[i:]))
	}

	return words, nil
}

func readLines(r io.Reader, base int) ([]uint32, error) {
	var words []uint32

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		word, err := strconv.ParseUint(text, base, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, errors.Unwrap(err))
		}

		words = append(words, uint32(word))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
