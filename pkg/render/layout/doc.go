// Package layout computes page geometry for an amidakuji diagram.
//
// [Build] turns a [ladder.Diagram] and its [ladder.Mapping] into a [Layout]:
// positioned vertical lines, rungs, start labels, end labels and a footer,
// all in points on a fixed page with a top-left origin. Sinks in
// [sink] only draw what the layout tells them to.
//
// # Vertical Bands
//
// The drawable height is split into k+2 equal bands, where k is the number of
// distinct rows holding rungs. The first band holds the start labels, the
// last band the end labels, and rung row r (by rank, not by raw row number)
// sits at the centre of band r+1. Rows the generator left empty take no
// space. A ladder without rungs still gets one rung band so its lines have
// length.
//
// [sink]: github.com/matzehuels/amidakuji/pkg/render/sink
package layout
