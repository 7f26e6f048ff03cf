package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/ladder"
	"github.com/matzehuels/amidakuji/pkg/render/layout"
	"github.com/matzehuels/amidakuji/pkg/render/sink"
)

func TestExportImportRoundTrip(t *testing.T) {
	d, err := ladder.Generate(5, 3, 9, ladder.WithSeed(11))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "nested", "dir", "ladder.json")
	if err := ExportJSON(d, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if got.ID != d.ID || got.LineCount != d.LineCount || got.Height != d.Height || got.Strategy != d.Strategy {
		t.Errorf("ImportJSON() = %+v, want %+v", got, d)
	}
	if len(got.Rungs) != len(d.Rungs) {
		t.Fatalf("len(Rungs) = %d, want %d", len(got.Rungs), len(d.Rungs))
	}
	for i := range d.Rungs {
		if got.Rungs[i] != d.Rungs[i] {
			t.Errorf("Rungs[%d] = %+v, want %+v", i, got.Rungs[i], d.Rungs[i])
		}
	}
}

func TestReadJSONSinkDocument(t *testing.T) {
	d := &ladder.Diagram{LineCount: 3, Rungs: []ladder.Rung{{Row: 0, Column: 1}}}
	m := ladder.Simulate(d)
	l, err := layout.Build(d, m)
	if err != nil {
		t.Fatalf("layout.Build() error = %v", err)
	}
	data, err := sink.RenderJSON(l, sink.WithJSONDiagram(d, m))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	got, err := ReadJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if got.LineCount != 3 || len(got.Rungs) != 1 || got.Rungs[0] != d.Rungs[0] {
		t.Errorf("ReadJSON() = %+v, want %+v", got, d)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"line_count": `},
		{"too few lines", `{"line_count": 1, "rungs": []}`},
		{"too many lines", `{"line_count": 1000000000000000000, "rungs": []}`},
		{"rung out of range", `{"line_count": 3, "rungs": [{"row": 0, "left_column": 2}]}`},
		{"adjacent rungs", `{"line_count": 4, "rungs": [{"row": 1, "left_column": 0}, {"row": 1, "left_column": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidDiagram) {
				t.Errorf("ReadJSON() error = %v, want INVALID_DIAGRAM", err)
			}
		})
	}
}

func TestReadJSONMissingRungs(t *testing.T) {
	d, err := ReadJSON(strings.NewReader(`{"line_count": 4}`))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if d.Rungs == nil || len(d.Rungs) != 0 {
		t.Errorf("Rungs = %v, want empty", d.Rungs)
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("ImportJSON() error = %v, want IO_ERROR", err)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	d := &ladder.Diagram{LineCount: 2, Rungs: []ladder.Rung{{Row: 1, Column: 0}}}
	if err := WriteJSON(d, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"left_column": 0`) {
		t.Errorf("WriteJSON() = %s", buf.String())
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.pdf")
	if err := WriteFile(path, []byte("%PDF-1.3")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "%PDF-1.3" {
		t.Errorf("file content = %q", data)
	}
}

func TestWriteFileErrors(t *testing.T) {
	if err := WriteFile("", nil); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("WriteFile(\"\") error = %v, want INVALID_PATH", err)
	}

	// A regular file where a directory is expected.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(filepath.Join(blocker, "out.pdf"), nil); !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("WriteFile() error = %v, want IO_ERROR", err)
	}
}
