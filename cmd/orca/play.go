package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"nitro-core-dx/internal/orcamachine"
	"nitro-core-dx/internal/orcarand"
	"nitro-core-dx/internal/synthsink/beepsink"
)

var (
	playBPM        int
	playSeed       int64
	playBufferSize int
)

var playCmd = &cobra.Command{
	Use:   "play path/to/grid.orca",
	Short: "evaluate a grid in real time, driving the speaker until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&playBPM, "bpm", orcamachine.DefaultBPM, "tempo driving the tick clock")
	playCmd.Flags().Int64Var(&playSeed, "seed", 1, "seed for the R operator's entropy source")
	playCmd.Flags().IntVar(&playBufferSize, "buffer", 512, "audio output buffer size, in samples")
}

// runPlay mirrors the teacher's ticker-driven frame loop (VM.Run in
// bradford-hamilton-chippy's internal/chip8/chip8.go), running at a
// fixed host frame rate and letting the machine itself decide when a
// tick boundary falls due.
func runPlay(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading grid: %w", err)
	}

	sink, err := beepsink.New(playBufferSize)
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}

	m := orcamachine.New(sink, orcarand.New(playSeed), nil)
	if err := m.Load(string(text)); err != nil {
		return err
	}
	m.SetBPM(playBPM)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / orcamachine.FrameRate)
	defer ticker.Stop()

	out := make([]int16, 2)
	fmt.Printf("playing %s at %d bpm, ctrl-c to stop\n", args[0], playBPM)
	for {
		select {
		case <-ticker.C:
			m.RunFrame(out, 1)
		case <-sig:
			fmt.Println("\nstopping")
			return nil
		}
	}
}
