package common

import (
	"io"

	"gopkg.in/yaml.v3"
)

func PrintSnapshotsYAML(snapshots []Snapshot, output io.Writer, options *PrintOptions) error {
	encoder := yaml.NewEncoder(output)
	if options != nil && options.Indent > 0 {
		encoder.SetIndent(options.Indent)
	}
	if err := encoder.Encode(trimSnapshots(snapshots, options)); err != nil {
		return err
	}
	return encoder.Close()
}

func ReadSnapshotsYAML(input io.Reader) ([]Snapshot, error) {
	var snapshots []Snapshot
	if err := yaml.NewDecoder(input).Decode(&snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}
