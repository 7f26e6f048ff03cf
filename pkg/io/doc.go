// Package io provides JSON import and export for amidakuji diagrams and a
// helper for writing output artifacts.
//
// # JSON Format
//
// A diagram is stored as:
//
//	{
//	  "id": "4b7c…",
//	  "line_count": 4,
//	  "height": 8,
//	  "strategy": "baseline",
//	  "rungs": [
//	    {"row": 0, "left_column": 0},
//	    {"row": 3, "left_column": 2}
//	  ]
//	}
//
// Only "line_count" and "rungs" are required. [ReadJSON] also accepts the
// document written by the JSON sink, which nests the diagram under a
// "diagram" key next to the mapping and layout, so `generate -f json` output
// can be fed straight back into `simulate`.
//
// Imported diagrams are validated; a diagram that breaks the ladder
// invariants is rejected with INVALID_DIAGRAM.
package io
