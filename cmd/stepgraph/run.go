package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepgraph/articulation"
	"github.com/katalvlaran/stepgraph/bfs"
	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/dfs"
	"github.com/katalvlaran/stepgraph/graphdoc"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <graph.yaml>",
	Short: "Run an algorithm over a graph document and print the narrated steps",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algo, _ := cmd.Flags().GetString("algo")
		start, _ := cmd.Flags().GetString("start")

		doc, err := graphdoc.Load(args[0])
		if err != nil {
			fmt.Printf("Error loading graph: %v\n", err)
			os.Exit(1)
		}
		if start == "" {
			start = doc.Start
		}

		steps, err := runAlgorithm(algo, doc, start)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		for i, s := range steps {
			fmt.Printf("%3d. %s\n", i+1, s.Narration)
		}
	},
}

// runAlgorithm dispatches to a stepper by name.
func runAlgorithm(algo string, doc *graphdoc.Document, start string) (core.StepSequence, error) {
	switch algo {
	case "bfs":
		return bfs.Run(doc.Nodes, doc.Edges, start), nil
	case "dfs":
		return dfs.Run(doc.Nodes, doc.Edges, start), nil
	case "articulation":
		return articulation.Run(doc.Nodes, doc.Edges), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want bfs, dfs, or articulation)", algo)
	}
}

func init() {
	runCmd.Flags().String("algo", "bfs", "Algorithm to run: bfs, dfs, or articulation")
	runCmd.Flags().String("start", "", "Start node id (defaults to the document's start)")
	rootCmd.AddCommand(runCmd)
}
