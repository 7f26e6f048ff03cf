package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/ladder"
)

// WriteJSON encodes a diagram as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(d *ladder.Diagram, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode diagram")
	}
	return nil
}

// ExportJSON writes a diagram to a JSON file at path, creating parent
// directories as needed.
func ExportJSON(d *ladder.Diagram, path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "marshal diagram")
	}
	return WriteFile(path, append(data, '\n'))
}

// WriteFile writes data to path, creating parent directories first.
// A failed write may leave a partial file behind.
func WriteFile(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
