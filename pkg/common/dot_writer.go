package common

import (
	"fmt"
	"io"
	"strings"
)

func PrintSnapshotsDOT(snapshots []Snapshot, output io.Writer, options *PrintOptions) error {
	var sb strings.Builder

	// Initialize the DOT graph
	sb.WriteString("digraph G {\n")
	sb.WriteString("  bgcolor=\"transparent\";\n")
	sb.WriteString("  rankdir=\"LR\";\n")
	sb.WriteString("  node [shape=\"box\", style=\"filled\", fontname=\"Ubuntu Mono\"];\n")

	for i, s := range trimSnapshots(snapshots, options) {
		printListDOT(&sb, i, s, options)
	}

	// Close the graph
	sb.WriteString("}\n")
	_, err := io.WriteString(output, sb.String())
	return err
}

// printListDOT writes one chain: a head box, one box per node, and a nil
// point terminating the chain.
func printListDOT(sb *strings.Builder, listNo int, s Snapshot, options *PrintOptions) {
	headID := fmt.Sprintf("list_%d", listNo)
	fmt.Fprintf(sb, "  \"%s\" [label=\"%s\", fillcolor=\"%s\"];\n", headID, escapeDOTValue(s.Name), headColor)

	prevID := headID
	for i, value := range s.Values {
		nodeID := fmt.Sprintf("list_%d_node_%d", listNo, i)
		label := escapeDOTValue(value)
		if options != nil && options.ShowPositions {
			label = fmt.Sprintf("%d: %s", i, label)
		}
		fmt.Fprintf(sb, "  \"%s\" [label=\"%s\", fillcolor=\"%s\"];\n", nodeID, label, nodeColor)
		fmt.Fprintf(sb, "  \"%s\" -> \"%s\";\n", prevID, nodeID)
		prevID = nodeID
	}

	nilID := fmt.Sprintf("list_%d_nil", listNo)
	fmt.Fprintf(sb, "  \"%s\" [shape=\"point\"];\n", nilID)
	fmt.Fprintf(sb, "  \"%s\" -> \"%s\";\n", prevID, nilID)
}

func escapeDOTValue(value string) string {
	// Escape special characters for DOT format
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}

const (
	headColor = "PaleTurquoise"
	nodeColor = "lightgoldenrodyellow"
)
