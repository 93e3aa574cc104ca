package graphdoc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/graphdoc"
)

const bridgeYAML = `
name: bridge demo
nodes:
  - {id: a, label: A, x: 0, y: 0}
  - {id: b, label: B, x: 1, y: 0}
  - {id: c, label: C, x: 2, y: 0}
edges:
  - {id: e1, source: a, target: b}
  - {source: b, target: c}
`

// TestParse decodes a document and fills defaulted fields.
func TestParse(t *testing.T) {
	doc, err := graphdoc.Parse([]byte(bridgeYAML))
	require.NoError(t, err)

	require.Equal(t, "bridge demo", doc.Name)
	require.Len(t, doc.Nodes, 3)
	require.Len(t, doc.Edges, 2)

	// Missing edge id generated positionally; missing start defaults to
	// the first node.
	require.Equal(t, "e2", doc.Edges[1].ID)
	require.Equal(t, "a", doc.Start)
}

// TestParse_ExplicitStart is honored when the node exists.
func TestParse_ExplicitStart(t *testing.T) {
	doc, err := graphdoc.Parse([]byte("start: b\nnodes:\n  - {id: a}\n  - {id: b}\n"))
	require.NoError(t, err)
	require.Equal(t, "b", doc.Start)
}

// TestParse_Validation rejects malformed documents with sentinel errors.
func TestParse_Validation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"no nodes", "name: empty\n", graphdoc.ErrNoNodes},
		{"empty node id", "nodes:\n  - {label: A}\n", graphdoc.ErrEmptyNodeID},
		{"duplicate node id", "nodes:\n  - {id: a}\n  - {id: a}\n", graphdoc.ErrDuplicateNodeID},
		{"dangling source", "nodes:\n  - {id: a}\nedges:\n  - {source: ghost, target: a}\n", graphdoc.ErrDanglingEdge},
		{"dangling target", "nodes:\n  - {id: a}\nedges:\n  - {source: a, target: ghost}\n", graphdoc.ErrDanglingEdge},
		{"unknown start", "start: ghost\nnodes:\n  - {id: a}\n", graphdoc.ErrUnknownStart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphdoc.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_BadYAML surfaces decode failures.
func TestParse_BadYAML(t *testing.T) {
	_, err := graphdoc.Parse([]byte("nodes: [whoops"))
	require.Error(t, err)
}

// TestLoad round-trips through a file.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(bridgeYAML), 0o600))

	doc, err := graphdoc.Load(path)
	require.NoError(t, err)
	require.Equal(t, "bridge demo", doc.Name)

	_, err = graphdoc.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
