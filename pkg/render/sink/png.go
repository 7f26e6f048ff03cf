package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/render/layout"
)

const (
	// DefaultPNGScale is pixels per point (2x for crisp output).
	DefaultPNGScale = 2.0

	// supersample is the oversampling factor before downscaling.
	supersample = 2
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets pixels per point (default 2.0).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterises the layout. Strokes are axis-aligned, so they are
// drawn as filled rectangles on a supersampled canvas that is then scaled
// down with Catmull-Rom interpolation.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultPNGScale}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "png scale must be positive, got %g", r.scale)
	}

	k := r.scale * supersample
	w := int(math.Ceil(l.Page.Width * r.scale))
	h := int(math.Ceil(l.Page.Height * r.scale))
	large := image.NewRGBA(image.Rect(0, 0, w*supersample, h*supersample))
	draw.Draw(large, large.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	ink := image.NewUniform(color.Black)
	for _, s := range l.Lines {
		strokeRect(large, s, k, ink)
	}
	for _, s := range l.Rungs {
		strokeRect(large, s, k, ink)
	}

	labels, err := newFace(fontSize * k)
	if err != nil {
		return nil, err
	}
	defer labels.Close()
	for _, lbl := range l.StartLabels {
		drawText(large, labels, lbl, k, true)
	}
	for _, lbl := range l.EndLabels {
		drawText(large, labels, lbl, k, true)
	}

	footer, err := newFace(footerSize * k)
	if err != nil {
		return nil, err
	}
	defer footer.Close()
	drawText(large, footer, l.Footer, k, false)

	final := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, final); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// strokeRect draws an axis-aligned segment as a rectangle strokeWidth wide.
func strokeRect(img draw.Image, s layout.Segment, k float64, src image.Image) {
	half := strokeWidth / 2
	x0, x1 := math.Min(s.X1, s.X2)-half, math.Max(s.X1, s.X2)+half
	y0, y1 := math.Min(s.Y1, s.Y2)-half, math.Max(s.Y1, s.Y2)+half
	rect := image.Rect(
		int(math.Round(x0*k)), int(math.Round(y0*k)),
		int(math.Round(x1*k)), int(math.Round(y1*k)),
	)
	draw.Draw(img, rect, src, image.Point{}, draw.Over)
}

func newFace(size float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse font")
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font face")
	}
	return face, nil
}

// drawText draws lbl with its vertical centre at lbl.Y, horizontally centred
// on lbl.X when centred is set and starting at lbl.X otherwise.
func drawText(img draw.Image, face font.Face, lbl layout.Label, k float64, centred bool) {
	x := lbl.X * k
	if centred {
		adv := font.MeasureString(face, lbl.Text)
		x -= float64(adv) / 64 / 2
	}
	m := face.Metrics()
	ascent, descent := float64(m.Ascent)/64, float64(m.Descent)/64
	y := lbl.Y*k + (ascent-descent)/2

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(lbl.Text)
}
