// Package raster paints display commands into an in-memory RGBA image by
// wrapping rasterx.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"VectorDisplay/internal/render"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ render.Surface = (*Surface)(nil)

// miter limit handed to the stroker; joins are round so it only matters
// for degenerate curves.
const miterLimit = fixed.Int26_6(4 << 6)

type Surface struct {
	img     *image.RGBA
	filler  *rasterx.Filler  // circles
	stroker *rasterx.Stroker // lines and curves
}

// New returns a surface of w by h pixels.
func New(w, h int) *Surface {
	s := &Surface{}
	s.allocate(w, h)
	return s
}

func (s *Surface) allocate(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, s.img, s.img.Bounds())
	s.filler = rasterx.NewFiller(w, h, scanner)
	s.stroker = rasterx.NewStroker(w, h, scanner)
}

// Image returns the backing image. A resize replaces it.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

func (s *Surface) Size() render.Size {
	b := s.img.Bounds()
	return render.Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

// Resize reallocates the image when the pixel size changes. The content is
// not kept.
func (s *Surface) Resize(size render.Size) {
	w, h := int(size.W), int(size.H)
	if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	s.allocate(w, h)
}

func (s *Surface) Clear(bg color.NRGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (s *Surface) FillCircle(c render.Point, radius float64, style render.Style) {
	if radius <= 0 {
		return
	}
	s.filler.Clear()
	s.filler.SetColor(style.Color)
	rasterx.AddCircle(c.X, c.Y, radius, s.filler)
	s.filler.Draw()
}

func (s *Surface) StrokeLine(a, b render.Point, style render.Style) {
	if !s.beginStroke(style) {
		return
	}
	s.stroker.Start(rasterx.ToFixedP(a.X, a.Y))
	s.stroker.Line(rasterx.ToFixedP(b.X, b.Y))
	s.stroker.Stop(false)
	s.stroker.Draw()
}

func (s *Surface) StrokeCubic(p0, p1, p2, p3 render.Point, style render.Style) {
	if !s.beginStroke(style) {
		return
	}
	s.stroker.Start(rasterx.ToFixedP(p0.X, p0.Y))
	s.stroker.CubeBezier(rasterx.ToFixedP(p1.X, p1.Y), rasterx.ToFixedP(p2.X, p2.Y), rasterx.ToFixedP(p3.X, p3.Y))
	s.stroker.Stop(false)
	s.stroker.Draw()
}

func (s *Surface) beginStroke(style render.Style) bool {
	if style.Width <= 0 {
		return false
	}
	s.stroker.Clear()
	s.stroker.SetStroke(fixed.Int26_6(style.Width*64), miterLimit,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
	s.stroker.SetColor(style.Color)
	return true
}

// WritePNG encodes the current pixels.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("could not encode png: %w", err)
	}
	return nil
}
