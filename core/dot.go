// SPDX-License-Identifier: MIT
//
// File: dot.go
// Role: Graphviz DOT export for quick visual inspection of similarity graphs.

package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// WriteDOT renders g in Graphviz DOT syntax.
//
// Vertices are emitted in ID order and edges in key order, so the output is
// byte-stable for a given graph. Edge weights become "weight" and "label"
// attributes.
//
// Complexity: O(V log V + E log E).
func WriteDOT(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)

	kind, arrow := "graph", " -- "
	if g.Directed() {
		kind, arrow = "digraph", " -> "
	}

	bw.WriteString(kind + " G {\n")
	for _, id := range g.VertexIDs() {
		bw.WriteString("  " + strconv.Quote(id) + ";\n")
	}
	for _, e := range g.Edges() {
		weight := strconv.FormatFloat(e.Weight, 'g', -1, 64)
		bw.WriteString("  " + strconv.Quote(e.From) + arrow + strconv.Quote(e.To))
		bw.WriteString(" [weight=" + weight + ", label=" + strconv.Quote(weight) + "];\n")
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

// ToDOT returns the DOT rendering of g as a string.
func ToDOT(g *Graph) string {
	var sb strings.Builder
	_ = WriteDOT(&sb, g) // strings.Builder never fails

	return sb.String()
}
