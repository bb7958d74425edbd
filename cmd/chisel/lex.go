package main

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/joha7809/Chisel-Erode/asm"
)

var lexDump bool

// lexCmd represents the lex command
var lexCmd = &cobra.Command{
	Use:   "lex sourceFile",
	Short: "Print the tokens of a source file",
	Long: `Lex prints every token of a source file with its position. Characters
that start no token are dropped silently, so lex is the place to check what
the assembler actually sees.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		tokens := asm.Lex(string(source))

		if lexDump {
			printer := pp.New()
			printer.SetOutput(cmd.OutOrStdout())
			printer.SetColoringEnabled(cfg.Color)
			printer.Println(tokens)
			return nil
		}

		for _, tok := range tokens {
			fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\n",
				tok.Span.Line+1, asm.Column(string(source), tok.Span.Start), tok)
		}

		return nil
	},
}

func init() {
	lexCmd.Flags().BoolVar(&lexDump, "dump", false,
		"pretty-print the full token structs")

	rootCmd.AddCommand(lexCmd)
}
