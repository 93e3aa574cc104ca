package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepgraph/graphdoc"
	"github.com/katalvlaran/stepgraph/vis"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <graph.yaml>",
	Short: "Render the final state of a run as a go-echarts HTML file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algo, _ := cmd.Flags().GetString("algo")
		start, _ := cmd.Flags().GetString("start")
		out, _ := cmd.Flags().GetString("out")

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

		f, err := os.Create(out)
		if err != nil {
			fmt.Printf("Error creating %s: %v\n", out, err)
			os.Exit(1)
		}
		defer f.Close()

		title := doc.Name
		if title == "" {
			title = "stepgraph " + algo
		}
		if err := vis.WriteHTML(f, title, doc.Nodes, doc.Edges, steps); err != nil {
			fmt.Printf("Error rendering: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d steps)\n", out, len(steps))
	},
}

func init() {
	exportCmd.Flags().String("algo", "bfs", "Algorithm to run: bfs, dfs, or articulation")
	exportCmd.Flags().String("start", "", "Start node id (defaults to the document's start)")
	exportCmd.Flags().String("out", "stepgraph.html", "Output HTML file")
	rootCmd.AddCommand(exportCmd)
}
