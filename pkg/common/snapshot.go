package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spicery/fwdlist/pkg/fwdlist"
)

// Snapshot is a printable copy of a named list, front to back.
type Snapshot struct {
	Name   string   `json:"name" yaml:"name"`
	Values []string `json:"values" yaml:"values"`
}

// NewSnapshot captures the contents of l by iterating over it.
func NewSnapshot[T comparable](name string, l *fwdlist.List[T]) Snapshot {
	values := make([]string, 0, l.Size())
	for v := range l.All() {
		values = append(values, fmt.Sprint(v))
	}
	return Snapshot{Name: name, Values: values}
}

// PrintFunc writes a set of snapshots in one output format.
type PrintFunc func([]Snapshot, io.Writer, *PrintOptions) error

// PickPrintFunc returns the printer for format, matched case-insensitively.
func PickPrintFunc(format string) (PrintFunc, error) {
	switch strings.ToUpper(format) {
	case "TEXT":
		return PrintSnapshotsText, nil
	case "JSON":
		return PrintSnapshotsJSON, nil
	case "YAML":
		return PrintSnapshotsYAML, nil
	case "ASCIITREE":
		return PrintSnapshotsAsciiTree, nil
	case "DOT":
		return PrintSnapshotsDOT, nil
	default:
		return nil, errors.Errorf("unknown format: %s", format)
	}
}

// TrimValue shortens value to trimLength characters, ending with an ellipsis,
// when trimming is enabled.
func TrimValue(value string, trimLength int) string {
	runes := []rune(value)
	if trimLength > 0 && len(runes) > trimLength {
		// Reserve space for Unicode ellipsis (1 character: "…")
		if trimLength >= 2 {
			return string(runes[:trimLength-1]) + "…"
		}
		// If trim length is too small for ellipsis, just truncate
		return string(runes[:trimLength])
	}
	return value
}

func trimSnapshots(snapshots []Snapshot, options *PrintOptions) []Snapshot {
	if options == nil || options.TrimValueOnOutput <= 0 {
		return snapshots
	}
	trimmed := make([]Snapshot, len(snapshots))
	for i, s := range snapshots {
		values := make([]string, len(s.Values))
		for j, v := range s.Values {
			values[j] = TrimValue(v, options.TrimValueOnOutput)
		}
		trimmed[i] = Snapshot{Name: s.Name, Values: values}
	}
	return trimmed
}
