package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joha7809/Chisel-Erode/codec"
	"github.com/joha7809/Chisel-Erode/objfile"
)

var (
	disFormat string
	disPlain  bool
)

// disCmd represents the dis command
var disCmd = &cobra.Command{
	Use:   "dis objectFile",
	Short: "Disassemble an object file",
	Long: `Dis decodes an object file and prints one instruction per word. Labels
are not recovered; jump targets are printed as instruction indices.

The format is taken from --format, then from the file extension (.bin, .hex,
.txt), then from the config.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := readObject(args[0], disFormat)
		if err != nil {
			return err
		}

		if !disPlain {
			objfile.WriteListing(cmd.OutOrStdout(), words)
			return nil
		}

		prog, err := codec.DecodeProgram(words)
		if err != nil {
			return err
		}

		for _, inst := range prog {
			fmt.Fprintln(cmd.OutOrStdout(), inst)
		}

		return nil
	},
}

func init() {
	disCmd.Flags().StringVarP(&disFormat, "format", "f", "",
		"bin, hex or text")
	disCmd.Flags().BoolVarP(&disPlain, "plain", "p", false,
		"print bare assembly that can be assembled again")

	rootCmd.AddCommand(disCmd)
}
