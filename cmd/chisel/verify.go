package main

import (
	"github.com/spf13/cobra"

	"github.com/joha7809/Chisel-Erode/verify"
)

var (
	verifyFormat string
	verifyReport string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify program",
	Short: "Lint a program and run it on the reference core",
	Long: `Verify checks the control flow and register use of a program, then runs
it on the reference core and prints a report. It fails when the lint finds a
structural problem or the program does not reach END. Reads of registers that
were never written are reported as warnings.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, _, err := loadProgram(args[0], verifyFormat)
		if err != nil {
			return err
		}

		report := verify.GenerateReport(prog, cfg.RunOptions())

		if verifyReport != "" {
			err = report.SaveReportToFile(verifyReport)
			if err != nil {
				return err
			}
		} else {
			report.WriteReport(cmd.OutOrStdout())
		}

		if !report.Passed() {
			return errReported
		}

		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyFormat, "format", "f", "",
		"object format when the program is not source")
	verifyCmd.Flags().StringVarP(&verifyReport, "output", "o", "",
		"write the report to a file instead of stdout")

	rootCmd.AddCommand(verifyCmd)
}
