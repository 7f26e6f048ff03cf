// Package sink provides output format renderers for amidakuji layouts.
//
// # Overview
//
// A "sink" transforms a computed [layout.Layout] into a final output format:
//
//   - PDF: single-page print document ([RenderPDF], via go-pdf/fpdf)
//   - SVG: scalable vector graphics ([RenderSVG])
//   - PNG: raster image ([RenderPNG], via golang.org/x/image)
//   - JSON: diagram, mapping and layout export ([RenderJSON])
//
// [Render] dispatches on a format name:
//
//	data, err := sink.Render(sink.FormatPDF, l, sink.WithDiagram(d, m))
//
// None of the sinks need external tools.
//
// [layout.Layout]: github.com/matzehuels/amidakuji/pkg/render/layout.Layout
package sink
