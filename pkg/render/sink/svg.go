package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/amidakuji/pkg/render/layout"
)

// RenderSVG renders the layout as a standalone SVG document whose user units
// are points.
func RenderSVG(l layout.Layout) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0fpt" height="%.0fpt">`+"\n",
		l.Page.Width, l.Page.Height, l.Page.Width, l.Page.Height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="white"/>`+"\n")

	fmt.Fprintf(&buf, `  <g class="lines" stroke="black" stroke-width="%.1f" stroke-linecap="round">`+"\n", strokeWidth)
	for _, s := range l.Lines {
		writeSegment(&buf, s)
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, `  <g class="rungs" stroke="black" stroke-width="%.1f" stroke-linecap="round">`+"\n", strokeWidth)
	for _, s := range l.Rungs {
		writeSegment(&buf, s)
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, `  <g class="labels" font-family="Helvetica, Arial, sans-serif" font-size="%.0f" text-anchor="middle" dominant-baseline="central">`+"\n", fontSize)
	for _, lbl := range l.StartLabels {
		writeText(&buf, lbl)
	}
	for _, lbl := range l.EndLabels {
		writeText(&buf, lbl)
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, `  <text class="footer" x="%.2f" y="%.2f" font-family="Helvetica, Arial, sans-serif" font-size="%.0f" dominant-baseline="central">%s</text>`+"\n",
		l.Footer.X, l.Footer.Y, footerSize, html.EscapeString(l.Footer.Text))

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeSegment(buf *bytes.Buffer, s layout.Segment) {
	fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", s.X1, s.Y1, s.X2, s.Y2)
}

func writeText(buf *bytes.Buffer, lbl layout.Label) {
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f">%s</text>`+"\n", lbl.X, lbl.Y, html.EscapeString(lbl.Text))
}
