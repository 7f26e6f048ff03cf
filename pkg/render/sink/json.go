package sink

import (
	"encoding/json"

	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/ladder"
	"github.com/matzehuels/amidakuji/pkg/render/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	diagram *ladder.Diagram
	mapping ladder.Mapping
}

// WithJSONDiagram includes the source diagram and its mapping in the output,
// so the file can be re-imported with io.ImportJSON.
func WithJSONDiagram(d *ladder.Diagram, m ladder.Mapping) JSONOption {
	return func(r *jsonRenderer) { r.diagram, r.mapping = d, m }
}

// Document is the JSON export of a rendered diagram.
type Document struct {
	Diagram *ladder.Diagram `json:"diagram,omitempty"`
	Mapping ladder.Mapping  `json:"mapping,omitempty"`
	Layout  layout.Layout   `json:"layout"`
}

// RenderJSON exports the layout, and optionally the diagram, as indented
// JSON.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	doc := Document{Diagram: r.diagram, Mapping: r.mapping, Layout: l}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal json")
	}
	return append(data, '\n'), nil
}
