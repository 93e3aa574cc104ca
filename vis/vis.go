// Package vis exports a finished run as a self-contained HTML file: a
// force-directed go-echarts graph whose node colors reflect the final
// Step's state mapping, subtitled with the final narration.
//
// The engine itself never renders; vis is one consumer of an
// already-materialized core.StepSequence.
package vis

import (
	"errors"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/stepgraph/core"
)

// ErrEmptySequence is returned when there is no final Step to render.
var ErrEmptySequence = errors.New("vis: empty step sequence")

// stateColors maps each node state to its display color.
var stateColors = map[core.NodeState]string{
	core.StateDefault:      "#94a3b8",
	core.StateVisited:      "#22c55e",
	core.StateCurrent:      "#f59e0b",
	core.StateArticulation: "#ef4444",
}

// WriteHTML renders the final Step of seq over (nodes, edges) as an HTML
// page on w.
func WriteHTML(w io.Writer, title string, nodes []core.Node, edges []core.Edge, seq core.StepSequence) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	final := seq[len(seq)-1]
	labels := core.BuildLabels(nodes)

	graphNodes := make([]opts.GraphNode, 0, len(nodes))
	for _, n := range nodes {
		graphNodes = append(graphNodes, opts.GraphNode{
			Name:       labels.Resolve(n.ID),
			X:          float32(n.X),
			Y:          float32(n.Y),
			SymbolSize: 24,
			ItemStyle:  &opts.ItemStyle{Color: stateColors[final.States[n.ID]]},
		})
	}

	graphLinks := make([]opts.GraphLink, 0, len(edges))
	for _, e := range edges {
		graphLinks = append(graphLinks, opts.GraphLink{
			Source: labels.Resolve(e.Source),
			Target: labels.Resolve(e.Target),
		})
	}

	page := components.NewPage()
	page.AddCharts(graphChart(title, final.Narration, graphNodes, graphLinks))

	return page.Render(w)
}

func graphChart(title, subtitle string, nodes []opts.GraphNode, links []opts.GraphLink) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "90vh",
			Width:     "100vw",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	graph.AddSeries(
		"graph",
		nodes,
		links,
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Draggable: opts.Bool(true),
				Roam:      opts.Bool(true),
				Force:     &opts.GraphForce{Repulsion: 400},
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "top",
		}),
	)

	return graph
}
