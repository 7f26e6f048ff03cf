package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/ladder"
	"github.com/matzehuels/amidakuji/pkg/render/layout"
)

func testLayout(t *testing.T) (*ladder.Diagram, ladder.Mapping, layout.Layout) {
	t.Helper()
	d := &ladder.Diagram{
		LineCount: 4,
		Rungs: []ladder.Rung{
			{Row: 0, Column: 0},
			{Row: 0, Column: 2},
			{Row: 3, Column: 1},
		},
	}
	m := ladder.Simulate(d)
	l, err := layout.Build(d, m)
	if err != nil {
		t.Fatalf("layout.Build() error = %v", err)
	}
	return d, m, l
}

func TestRenderSVG(t *testing.T) {
	_, _, l := testLayout(t)
	svg := string(RenderSVG(l))

	if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("RenderSVG() is not a complete svg document")
	}
	if got, want := strings.Count(svg, "<line "), 4+3; got != want {
		t.Errorf("line elements = %d, want %d", got, want)
	}
	for _, label := range []string{">1<", ">4<", ">A<", ">D<", "Generated with n=4, rungs=3"} {
		if !strings.Contains(svg, label) {
			t.Errorf("RenderSVG() missing %q", label)
		}
	}
}

func TestRenderPDF(t *testing.T) {
	_, _, l := testLayout(t)
	data, err := RenderPDF(l)
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("RenderPDF() output does not start with a PDF header")
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Errorf("RenderPDF() output has no EOF marker")
	}
}

func TestRenderPNG(t *testing.T) {
	_, _, l := testLayout(t)
	data, err := RenderPNG(l, WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 1191 || b.Dy() != 1684 {
		t.Errorf("PNG size = %dx%d, want 1191x1684", b.Dx(), b.Dy())
	}

	// The middle of the first vertical line must be dark.
	x := int(l.Lines[0].X1 * 2)
	y := int((l.Lines[0].Y1 + l.Lines[0].Y2) / 2 * 2)
	r, g, bl, _ := img.At(x, y).RGBA()
	if r > 0x8000 || g > 0x8000 || bl > 0x8000 {
		t.Errorf("pixel on line 0 = (%d,%d,%d), want dark", r>>8, g>>8, bl>>8)
	}
}

func TestRenderPNGRejectsBadScale(t *testing.T) {
	_, _, l := testLayout(t)
	if _, err := RenderPNG(l, WithScale(0)); !errors.Is(err, errors.ErrCodeInvalidParameter) {
		t.Errorf("RenderPNG(scale 0) error = %v, want INVALID_PARAMETER", err)
	}
}

func TestRenderJSON(t *testing.T) {
	d, m, l := testLayout(t)
	data, err := RenderJSON(l, WithJSONDiagram(d, m))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if doc.Diagram == nil || doc.Diagram.LineCount != 4 || len(doc.Diagram.Rungs) != 3 {
		t.Errorf("Diagram = %+v", doc.Diagram)
	}
	if len(doc.Mapping) != 4 {
		t.Errorf("Mapping = %v", doc.Mapping)
	}
	if doc.Layout.Bands != 4 {
		t.Errorf("Layout.Bands = %d, want 4", doc.Layout.Bands)
	}
}

func TestRenderDispatch(t *testing.T) {
	d, m, l := testLayout(t)
	for _, f := range []string{FormatPDF, FormatSVG, FormatJSON, FormatPNG} {
		t.Run(f, func(t *testing.T) {
			data, err := Render(f, l, WithDiagram(d, m), WithPNGScale(0.25))
			if err != nil {
				t.Fatalf("Render(%s) error = %v", f, err)
			}
			if len(data) == 0 {
				t.Errorf("Render(%s) returned no data", f)
			}
		})
	}

	if _, err := Render("gif", l); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(gif) error = %v, want INVALID_FORMAT", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct{ path, want string }{
		{"out/ladder.pdf", FormatPDF},
		{"LADDER.SVG", FormatSVG},
		{"x.png", FormatPNG},
		{"x.json", FormatJSON},
		{"x.txt", ""},
		{"noext", ""},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"pdf", "pdf", false},
		{"svg", "svg", false},
		{"png", "png", false},
		{"json", "json", false},
		{"invalid", "gif", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType(FormatPDF); got != "application/pdf" {
		t.Errorf("ContentType(pdf) = %q", got)
	}
	if got := ContentType("bin"); got != "application/octet-stream" {
		t.Errorf("ContentType(bin) = %q", got)
	}
}
