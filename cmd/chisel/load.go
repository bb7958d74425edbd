package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joha7809/Chisel-Erode/asm"
	"github.com/joha7809/Chisel-Erode/codec"
	"github.com/joha7809/Chisel-Erode/isa"
	"github.com/joha7809/Chisel-Erode/objfile"
)

// assembleFile assembles the source at path. Errors are rendered to stderr
// with the offending line and errReported is returned.
func assembleFile(path string) (*asm.Program, []uint32, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	prog, words, err := asm.Assemble(string(source))
	if err != nil {
		asm.Render(os.Stderr, path, string(source), err, cfg.Color)
		return nil, nil, errReported
	}

	slog.Debug("Assembled",
		"Stage", "encode",
		"File", path,
		"Instructions", len(prog.Instructions),
		"Labels", len(prog.Labels),
	)

	return prog, words, nil
}

func isSource(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".asm", ".s":
		return true
	}

	return false
}

// objectFormat picks the format of an object file: the flag if given, then
// the file extension, then the configured output format.
func objectFormat(path, flag string) (objfile.Format, error) {
	if flag != "" {
		return objfile.ParseFormat(flag)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bin":
		return objfile.FormatBin, nil
	case ".hex":
		return objfile.FormatHex, nil
	case ".txt":
		return objfile.FormatText, nil
	}

	return cfg.Format(), nil
}

func readObject(path, formatFlag string) ([]uint32, error) {
	format, err := objectFormat(path, formatFlag)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	words, err := objfile.Read(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Read object", "File", path, "Format", format, "Words", len(words))

	return words, nil
}

// loadProgram accepts either assembly source or an object file and returns
// both the instructions and their words.
func loadProgram(path, formatFlag string) (isa.Program, []uint32, error) {
	if isSource(path) {
		prog, words, err := assembleFile(path)
		if err != nil {
			return nil, nil, err
		}

		return prog.Instructions, words, nil
	}

	words, err := readObject(path, formatFlag)
	if err != nil {
		return nil, nil, err
	}

	prog, err := codec.DecodeProgram(words)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return prog, words, nil
}
