// Package pkg provides the libraries behind the amidakuji generator.
//
// # Overview
//
// An amidakuji (ghost-leg lottery) is a set of vertical lines joined by
// horizontal rungs. Following a line from the top and crossing every rung
// met on the way leads to exactly one bottom position, so the diagram is a
// random permutation that is easy to check by hand.
//
// # Architecture
//
//	[ladder] Generate (rung placement)
//	         ↓
//	[ladder] Simulate (start → destination mapping)
//	         ↓
//	[render/layout] Build (page geometry)
//	         ↓
//	[render/sink] PDF/SVG/PNG/JSON output
//
// [pipeline] runs the four steps with shared defaults and logging for the
// CLI and [server].
//
// # Quick Start
//
//	d, err := ladder.Generate(6, 5, 12, ladder.WithStrategy(ladder.Connected), ladder.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	m := ladder.Simulate(d)
//	l, err := layout.Build(d, m, layout.WithPage(layout.Letter))
//	if err != nil {
//	    return err
//	}
//	pdf, err := sink.RenderPDF(l)
//
// # Supporting Packages
//
//   - [config]: TOML/YAML defaults
//   - [errors]: coded errors shared by every package
//   - [io]: diagram JSON import/export and file writes
//   - [observability]: pluggable pipeline and HTTP hooks
//   - [buildinfo]: version information set at build time
//
// [ladder]: https://pkg.go.dev/github.com/matzehuels/amidakuji/pkg/ladder
// [render/layout]: https://pkg.go.dev/github.com/matzehuels/amidakuji/pkg/render/layout
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/amidakuji/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/amidakuji/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/amidakuji/pkg/server
// [config]: https://pkg.go.dev/github.com/matzehuels/amidakuji/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/amidakuji/pkg/errors
// [io]: https://pkg.go.dev/github.com/matzehuels/amidakuji/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/amidakuji/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/amidakuji/pkg/buildinfo
package pkg
