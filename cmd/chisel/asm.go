package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joha7809/Chisel-Erode/objfile"
)

var (
	asmOutput  string
	asmFormat  string
	asmListing bool
)

// asmCmd represents the asm command
var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "Assemble a source file into instruction words",
	Long: `Asm translates one source file into a stream of 32-bit words, one per
instruction, with no header. The words are written as raw big-endian bytes
(bin), one hex word per line (hex) or one binary word per line (text).

The first error stops assembly and is printed with its source line.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, words, err := assembleFile(args[0])
		if err != nil {
			return err
		}

		format := cfg.Format()
		if asmFormat != "" {
			format, err = objfile.ParseFormat(asmFormat)
			if err != nil {
				return err
			}
		}

		if asmListing {
			objfile.WriteListing(os.Stderr, words)
		}

		var out io.Writer = cmd.OutOrStdout()
		if asmOutput != "" {
			f, err := os.Create(asmOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		err = objfile.Write(out, format, words)
		if err != nil {
			return err
		}

		slog.Info("Wrote object",
			"Output", asmOutput,
			"Format", format,
			"Words", len(words),
		)

		return nil
	},
}

func init() {
	asmCmd.Flags().StringVarP(&asmOutput, "output", "o", "",
		"output file (default stdout)")
	asmCmd.Flags().StringVarP(&asmFormat, "format", "f", "",
		"bin, hex or text (default from config)")
	asmCmd.Flags().BoolVarP(&asmListing, "listing", "l", false,
		"print a disassembly listing to stderr")

	rootCmd.AddCommand(asmCmd)
}
