package sink

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/ladder"
	"github.com/matzehuels/amidakuji/pkg/render/layout"
)

// Format constants for output formats.
const (
	FormatPDF  = "pdf"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// DefaultFormat is used when neither a format nor a recognised file
// extension is given.
const DefaultFormat = FormatPDF

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPDF:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

var contentTypes = map[string]string{
	FormatPDF:  "application/pdf",
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatJSON: "application/json",
}

// ValidateFormat checks that f names a supported format.
func ValidateFormat(f string) error {
	if !ValidFormats[f] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'pdf', 'svg', 'png', or 'json')", f)
	}
	return nil
}

// FormatFromPath derives the format from a file extension, returning ""
// when the extension is not a supported format.
func FormatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ValidFormats[ext] {
		return ext
	}
	return ""
}

// ContentType returns the MIME type for a format.
func ContentType(f string) string {
	if ct, ok := contentTypes[f]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Option configures Render.
type Option func(*renderer)

type renderer struct {
	diagram *ladder.Diagram
	mapping ladder.Mapping
	scale   float64
}

// WithDiagram attaches the source diagram and its mapping; only the JSON
// sink uses them.
func WithDiagram(d *ladder.Diagram, m ladder.Mapping) Option {
	return func(r *renderer) { r.diagram, r.mapping = d, m }
}

// WithPNGScale sets pixels per point for PNG output.
func WithPNGScale(s float64) Option { return func(r *renderer) { r.scale = s } }

// Render renders l in format f.
func Render(f string, l layout.Layout, opts ...Option) ([]byte, error) {
	r := renderer{scale: DefaultPNGScale}
	for _, opt := range opts {
		opt(&r)
	}

	switch f {
	case FormatPDF:
		return RenderPDF(l)
	case FormatSVG:
		return RenderSVG(l), nil
	case FormatPNG:
		return RenderPNG(l, WithScale(r.scale))
	case FormatJSON:
		var jopts []JSONOption
		if r.diagram != nil {
			jopts = append(jopts, WithJSONDiagram(r.diagram, r.mapping))
		}
		return RenderJSON(l, jopts...)
	default:
		return nil, ValidateFormat(f)
	}
}
