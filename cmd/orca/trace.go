package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nitro-core-dx/internal/orcalog"
	"nitro-core-dx/internal/orcamachine"
	"nitro-core-dx/internal/orcarand"
)

var (
	traceBPM   int
	traceTicks int
	traceSeed  int64
)

var traceCmd = &cobra.Command{
	Use:   "trace path/to/grid.orca",
	Short: "evaluate a grid with full diagnostic logging and print every recorded entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrace,
}

func init() {
	traceCmd.Flags().IntVar(&traceBPM, "bpm", orcamachine.DefaultBPM, "tempo driving the tick clock")
	traceCmd.Flags().IntVar(&traceTicks, "ticks", 4, "number of evaluator ticks to run")
	traceCmd.Flags().Int64Var(&traceSeed, "seed", 1, "seed for the R operator's entropy source")
}

// runTrace mirrors the teacher's -log flag in cmd/emulator/main.go: a
// logger with every component enabled, built for diagnosing a single
// run rather than left on in production.
func runTrace(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading grid: %w", err)
	}

	log := orcalog.New(10000)
	log.SetEnabled(orcalog.ComponentGrid, true)
	log.SetEnabled(orcalog.ComponentOperator, true)
	log.SetEnabled(orcalog.ComponentNote, true)
	log.SetEnabled(orcalog.ComponentSynth, true)
	log.SetEnabled(orcalog.ComponentHost, true)
	log.SetMinLevel(orcalog.LevelDebug)
	defer log.Shutdown()

	m := orcamachine.New(nil, orcarand.New(traceSeed), log)
	if err := m.Load(string(text)); err != nil {
		return err
	}
	m.SetBPM(traceBPM)

	for i := 0; i < traceTicks; i++ {
		m.Tick()
	}

	for _, e := range log.Entries() {
		fmt.Printf("[%s] %s: %s\n", e.Component, e.Level, e.Message)
	}
	return nil
}
