package sink

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"github.com/matzehuels/amidakuji/pkg/buildinfo"
	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/render/layout"
)

// RenderPDF renders the layout as a single-page PDF sized to l.Page.
func RenderPDF(l layout.Layout) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: l.Page.Width, Ht: l.Page.Height},
	})
	pdf.SetTitle("Amidakuji", false)
	pdf.SetCreator(buildinfo.Creator(), false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(strokeWidth)
	pdf.SetLineCapStyle("round")
	for _, s := range l.Lines {
		pdf.Line(s.X1, s.Y1, s.X2, s.Y2)
	}
	for _, s := range l.Rungs {
		pdf.Line(s.X1, s.Y1, s.X2, s.Y2)
	}

	pdf.SetFont("Helvetica", "", fontSize)
	for _, lbl := range l.StartLabels {
		pdfCentered(pdf, lbl, fontSize)
	}
	for _, lbl := range l.EndLabels {
		pdfCentered(pdf, lbl, fontSize)
	}

	pdf.SetFont("Helvetica", "", footerSize)
	pdf.Text(l.Footer.X, baseline(l.Footer.Y, footerSize), l.Footer.Text)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render pdf")
	}
	return buf.Bytes(), nil
}

func pdfCentered(pdf *fpdf.Fpdf, lbl layout.Label, size float64) {
	w := pdf.GetStringWidth(lbl.Text)
	pdf.Text(lbl.X-w/2, baseline(lbl.Y, size), lbl.Text)
}

// baseline converts a vertical text centre to a baseline for Latin glyphs,
// whose cap height is roughly 0.7 em.
func baseline(cy, size float64) float64 {
	return cy + 0.35*size
}
