package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/spf13/cobra"

	"github.com/joha7809/Chisel-Erode/core"
)

var (
	runFormat    string
	runMaxCycles uint64
	runMonitor   bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run program",
	Short: "Run a program on the reference core",
	Long: `Run executes a source file (.asm, .s) or an object file on the reference
core until END, then prints the registers. The core stops with an error when
the PC leaves the program, a word does not decode, a memory access is out of
range or the cycle limit is reached.

With --monitor the akita web monitor is started and chisel waits for an
interrupt after the run.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, words, err := loadProgram(args[0], runFormat)
		if err != nil {
			return err
		}

		opts := cfg.RunOptions()
		if cmd.Flags().Changed("max-cycles") {
			opts.MaxCycles = runMaxCycles
		}

		var monitor *monitoring.Monitor
		engine := sim.NewSerialEngine()
		if runMonitor {
			monitor = monitoring.NewMonitor()
			monitor.RegisterEngine(engine)
		}

		c := core.MakeBuilder().
			WithEngine(engine).
			WithFreq(opts.Freq).
			WithMemory(opts.Memory).
			WithMaxCycles(opts.MaxCycles).
			Build("Core")

		if monitor != nil {
			monitor.RegisterComponent(c)
			monitor.StartServer()
		}

		c.MapProgram(words)

		err = engine.Run()
		if err != nil {
			return err
		}

		slog.Info("Run finished",
			"Cycles", c.Cycles(),
			"PC", c.PC(),
			"Time", float64(engine.CurrentTime()*1e9),
		)

		c.WriteState(cmd.OutOrStdout())

		if monitor != nil {
			fmt.Fprintln(os.Stderr, "Run finished, press Ctrl-C to stop the monitor")
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			<-ctx.Done()
			stop()
		}

		return c.Fault()
	},
}

func init() {
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "",
		"object format when the program is not source")
	runCmd.Flags().Uint64Var(&runMaxCycles, "max-cycles", 0,
		"stop after this many instructions, 0 for no limit (default from config)")
	runCmd.Flags().BoolVar(&runMonitor, "monitor", false,
		"serve the akita monitor while running")

	rootCmd.AddCommand(runCmd)
}
