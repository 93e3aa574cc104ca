// Package stepgraph turns graph algorithms into replayable step sequences —
// every traversal event is captured as an immutable snapshot of node and edge
// visual state plus a human-readable narration, ready for playback, scrubbing,
// or rendering.
//
// 🚀 What is stepgraph?
//
//	A small, deterministic step-generation engine plus the tooling around it:
//		• core/          — Node, Edge, Step, StepSequence, adjacency building
//		• bfs/           — breadth-first traversal as a step sequence
//		• dfs/           — depth-first traversal with explicit backtrack steps
//		• articulation/  — Tarjan cut-vertex detection with disc/low narration
//		• editor/        — graph authoring (nodes, undirected edges, start node)
//		• graphdoc/      — YAML graph documents for the CLI and server
//		• vis/           — go-echarts HTML export of a finished run
//		• server/        — JSON API over chi with Prometheus metrics
//		• cmd/stepgraph/ — cobra CLI: run, export, serve
//
// ✨ Why choose stepgraph?
//
//   - Deterministic — identical input always yields an identical sequence
//   - Pre-computed — a run returns the full sequence; replay needs no engine
//   - Pure engine — the steppers never render, never schedule, never mutate
//     the caller's graph, and hold no state between calls
//
// Quick ASCII example:
//
//	A───B───C───D
//
//	BFS from A visits A,B,C,D; DFS backtracks D,C,B,A; articulation
//	detection flags B and C (removing either one splits the path).
//
// Dive into the per-package docs for step semantics, narration formats,
// and edge-case policy.
package stepgraph
