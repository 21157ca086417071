package common

import (
	"fmt"
	"io"

	asciitree "github.com/thediveo/go-asciitree"
)

type AsciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []AsciiNode `asciitree:"children"`
}

// convertToTree turns a snapshot into a tree whose children are the list
// elements in order.
func convertToTree(s Snapshot, options *PrintOptions) AsciiNode {
	var children []AsciiNode
	for i, value := range s.Values {
		child := AsciiNode{Label: value}
		if options != nil && options.ShowPositions {
			child.Props = []string{fmt.Sprintf("position: %d", i)}
		}
		children = append(children, child)
	}
	return AsciiNode{
		Label:    s.Name,
		Props:    []string{fmt.Sprintf("size: %d", len(s.Values))},
		Children: children,
	}
}

func PrintSnapshotsAsciiTree(snapshots []Snapshot, output io.Writer, options *PrintOptions) error {
	for _, s := range trimSnapshots(snapshots, options) {
		if _, err := fmt.Fprintln(output, asciitree.RenderFancy(convertToTree(s, options))); err != nil {
			return err
		}
	}
	return nil
}
