package common

import (
	"encoding/json"
	"io"
	"strings"
)

func PrintSnapshotsJSON(snapshots []Snapshot, output io.Writer, options *PrintOptions) error {
	encoder := json.NewEncoder(output)
	if options != nil && options.Indent > 0 {
		encoder.SetIndent("", strings.Repeat(" ", options.Indent))
	}
	return encoder.Encode(trimSnapshots(snapshots, options))
}

func ReadSnapshotsJSON(input io.Reader) ([]Snapshot, error) {
	var snapshots []Snapshot
	decoder := json.NewDecoder(input)
	err := decoder.Decode(&snapshots)
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
