// Package render groups the diagram rendering packages.
//
// Rendering happens in two steps:
//
//   - [layout] turns a diagram and its mapping into page geometry: vertical
//     lines, rung segments, start and end labels, and a footer, all in points.
//   - [sink] encodes that geometry as PDF, SVG, PNG, or JSON.
//
//	l, err := layout.Build(d, ladder.Simulate(d))
//	svg := sink.RenderSVG(l)
//
// [layout]: github.com/matzehuels/amidakuji/pkg/render/layout
// [sink]: github.com/matzehuels/amidakuji/pkg/render/sink
package render
