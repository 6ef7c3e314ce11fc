package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const currentReleaseVersion = "v0.1.0"

var rootCmd = &cobra.Command{
	Use:   "orca [command]",
	Short: "orca evaluates a 2D glyph grid as live, tick-based music notation",
	Long:  "orca loads a grid file, evaluates it tick by tick, and drives a synthesiser from the notes it emits",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the installed orca version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(currentReleaseVersion)
	},
}
