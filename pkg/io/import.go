package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/ladder"
)

// document matches both a bare diagram and the JSON sink's export, which
// nests the diagram under "diagram".
type document struct {
	ladder.Diagram
	Nested *ladder.Diagram `json:"diagram"`
}

// ReadJSON decodes a diagram from r and validates it.
//
// ReadJSON returns an INVALID_DIAGRAM error if the JSON is malformed or the
// diagram breaks a ladder invariant (fewer than two lines, a rung outside
// the column range, shared or adjacent rungs on one row). ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (*ladder.Diagram, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDiagram, err, "decode diagram")
	}

	d := &doc.Diagram
	if doc.Nested != nil {
		d = doc.Nested
	}
	if d.Rungs == nil {
		d.Rungs = []ladder.Rung{}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// ImportJSON reads a JSON file at path and returns the decoded diagram.
func ImportJSON(path string) (*ladder.Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
