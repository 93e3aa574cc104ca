package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stepgraph",
	Short: "Stepgraph generates replayable step sequences for graph algorithms",
	Long: `Stepgraph runs BFS, DFS, or articulation-point detection over a YAML
graph document and produces an ordered sequence of narrated steps —
the replay a visualizer plays back.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
