package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nitro-core-dx/internal/orcamachine"
	"nitro-core-dx/internal/orcarand"
)

var (
	runBPM   int
	runTicks int
	runSeed  int64
)

var runCmd = &cobra.Command{
	Use:   "run path/to/grid.orca",
	Short: "evaluate a grid for a fixed number of ticks, silently, and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&runBPM, "bpm", orcamachine.DefaultBPM, "tempo driving the tick clock")
	runCmd.Flags().IntVar(&runTicks, "ticks", 16, "number of evaluator ticks to run")
	runCmd.Flags().Int64Var(&runSeed, "seed", 1, "seed for the R operator's entropy source")
}

func runRun(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading grid: %w", err)
	}

	m := orcamachine.New(nil, orcarand.New(runSeed), nil)
	if err := m.Load(string(text)); err != nil {
		return err
	}
	m.SetBPM(runBPM)

	for i := 0; i < runTicks; i++ {
		m.Tick()
	}

	fmt.Print(m.Save())
	return nil
}
