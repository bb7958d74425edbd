package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joha7809/Chisel-Erode/config"
)

// errReported is returned by commands that already printed their errors.
var errReported = errors.New("errors reported")

var (
	cfgFile  string
	logLevel string
	noColor  bool

	cfg config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chisel",
	Short: "Assembler, disassembler and reference core for the 32-bit ISA",
	Long: `Chisel translates assembly source into 32-bit instruction words and back.

Every instruction is one word. Labels name instruction indices, so a jump
target is the position of an instruction in the program, not a byte address.
Settings are read from chisel.yaml in the working directory if it exists.`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadIfExists(config.DefaultPath)
		}
		if err != nil {
			return err
		}

		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if noColor {
			cfg.Color = false
		}

		level, err := cfg.Level()
		if err != nil {
			return err
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: level})))

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"trace, debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"print diagnostics without colour")
}
