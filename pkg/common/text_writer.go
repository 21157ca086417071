package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// PrintSnapshotsText writes one line per list, e.g. `a (3 elements): [x y z]`.
func PrintSnapshotsText(snapshots []Snapshot, output io.Writer, options *PrintOptions) error {
	for _, s := range trimSnapshots(snapshots, options) {
		noun := "elements"
		if len(s.Values) == 1 {
			noun = "element"
		}
		_, err := fmt.Fprintf(output, "%s (%s %s): [%s]\n", s.Name, humanize.Comma(int64(len(s.Values))), noun, strings.Join(s.Values, " "))
		if err != nil {
			return err
		}
	}
	return nil
}
