package core

// AdjacencyMap maps a node ID to its neighbor IDs in edge input order.
// That order is the tie-break for every traversal, so for a fixed node and
// edge list the map — and therefore every step sequence — is deterministic.
type AdjacencyMap map[string][]string

// BuildAdjacency converts a node/edge list into an undirected adjacency map.
//
// Every node gets an entry, even isolated ones (empty neighbor slice).
// For each edge, Target is appended to Source's list and Source to Target's,
// preserving edge input order. There are no error conditions: an edge
// endpoint naming a non-existent node still lands in the map, and the
// steppers tolerate such neighbors (label lookups fall back to the raw ID;
// correctness is unaffected since traversal operates on IDs).
//
// Complexity: O(V + E) time and memory.
func BuildAdjacency(nodes []Node, edges []Edge) AdjacencyMap {
	adj := make(AdjacencyMap, len(nodes))
	for _, n := range nodes {
		adj[n.ID] = []string{}
	}
	for _, e := range edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}

	return adj
}

// IncidentEdges returns, in input order, the IDs of all edges touching id
// by either endpoint. A self-loop is reported once.
func IncidentEdges(edges []Edge, id string) []string {
	var ids []string
	for _, e := range edges {
		if e.Source == id || e.Target == id {
			ids = append(ids, e.ID)
		}
	}

	return ids
}

// LabelIndex maps node IDs to display labels for narration building.
type LabelIndex map[string]string

// BuildLabels indexes the labels of nodes by ID.
// Complexity: O(V).
func BuildLabels(nodes []Node) LabelIndex {
	li := make(LabelIndex, len(nodes))
	for _, n := range nodes {
		li[n.ID] = n.Label
	}

	return li
}

// Resolve returns the label for id, falling back to the raw ID when the
// node is unknown (dangling edge endpoint) or has an empty label.
func (li LabelIndex) Resolve(id string) string {
	if label, ok := li[id]; ok && label != "" {
		return label
	}

	return id
}
