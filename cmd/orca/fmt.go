package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nitro-core-dx/internal/orcaio"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt path/to/grid.orca",
	Short: "normalise a grid file: pad every row to the grid's width and ensure a trailing newline",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the normalised grid back to the file instead of printing it")
}

func runFmt(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading grid: %w", err)
	}

	g, err := orcaio.LoadFromText(string(text))
	if err != nil {
		return err
	}
	normalised := orcaio.ToText(g)

	if fmtWrite {
		return os.WriteFile(args[0], []byte(normalised), 0o644)
	}
	fmt.Print(normalised)
	return nil
}
