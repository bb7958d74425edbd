// Package config holds the settings of the chisel tool. Settings are read
// from a YAML file; keys that are not set keep their defaults.
//
//	output_format: hex     # bin, hex or text
//	log_level: info        # trace, debug, info, warn or error
//	memory_words: 1024     # data memory of the reference core
//	max_cycles: 100000     # the core faults after this many instructions
//	frequency_ghz: 1
//	color: true            # coloured diagnostics
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
	"gopkg.in/yaml.v3"

	"github.com/joha7809/Chisel-Erode/core"
	"github.com/joha7809/Chisel-Erode/objfile"
)

// DefaultPath is the file the tool reads when no path is given.
const DefaultPath = "chisel.yaml"

// Config is the tool configuration.
type Config struct {
	OutputFormat string  `yaml:"output_format"`
	LogLevel     string  `yaml:"log_level"`
	MemoryWords  int     `yaml:"memory_words"`
	MaxCycles    uint64  `yaml:"max_cycles"`
	FrequencyGHz float64 `yaml:"frequency_ghz"`
	Color        bool    `yaml:"color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		OutputFormat: string(objfile.FormatHex),
		LogLevel:     "info",
		MemoryWords:  1024,
		MaxCycles:    100000,
		FrequencyGHz: 1,
		Color:        true,
	}
}

// Load reads the file at path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return Parse(data)
}

// LoadIfExists is Load, except that a missing file yields the defaults.
func LoadIfExists(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if _, err := objfile.ParseFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("output_format: %w", err)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	if c.MemoryWords <= 0 {
		return fmt.Errorf("memory_words must be positive, got %d", c.MemoryWords)
	}

	if c.MaxCycles == 0 {
		return errors.New("max_cycles must be positive")
	}

	if c.FrequencyGHz <= 0 {
		return fmt.Errorf("frequency_ghz must be positive, got %g", c.FrequencyGHz)
	}

	return nil
}

// Format returns the object format.
func (c Config) Format() objfile.Format {
	return objfile.Format(c.OutputFormat)
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "trace":
		return core.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level: unknown level %q", c.LogLevel)
	}
}

// RunOptions returns the settings of the reference core. Each call creates
// a fresh data memory.
func (c Config) RunOptions() core.RunOptions {
	return core.RunOptions{
		Freq:      sim.Freq(c.FrequencyGHz) * sim.GHz,
		Memory:    core.NewWordMemory(c.MemoryWords),
		MaxCycles: c.MaxCycles,
	}
}
