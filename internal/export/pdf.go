package export

import (
	"fmt"
	"image/color"
	"io"

	"VectorDisplay/internal/render"

	"github.com/jung-kurt/gofpdf"
)

var _ render.Surface = (*PDFSurface)(nil)

// PDFSurface draws onto a single PDF page measured in points, one point per
// surface pixel.
type PDFSurface struct {
	pdf  *gofpdf.Fpdf
	size render.Size
}

// NewPDFSurface starts a document with one page of the given size.
func NewPDFSurface(size render.Size) *PDFSurface {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: size.W, Ht: size.H},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	pdf.AddPage()
	return &PDFSurface{pdf: pdf, size: size}
}

func (s *PDFSurface) Size() render.Size { return s.size }

// Resize starts a new page of the new size; earlier pages are kept.
func (s *PDFSurface) Resize(size render.Size) {
	if size == s.size {
		return
	}
	s.size = size
	s.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: size.W, Ht: size.H})
}

func (s *PDFSurface) Clear(bg color.NRGBA) {
	s.fill(bg)
	s.pdf.Rect(0, 0, s.size.W, s.size.H, "F")
}

func (s *PDFSurface) FillCircle(c render.Point, radius float64, style render.Style) {
	if radius <= 0 {
		return
	}
	s.fill(style.Color)
	s.pdf.Circle(c.X, c.Y, radius, "F")
}

func (s *PDFSurface) StrokeLine(a, b render.Point, style render.Style) {
	if style.Width <= 0 {
		return
	}
	s.stroke(style)
	s.pdf.Line(a.X, a.Y, b.X, b.Y)
}

func (s *PDFSurface) StrokeCubic(p0, p1, p2, p3 render.Point, style render.Style) {
	if style.Width <= 0 {
		return
	}
	s.stroke(style)
	s.pdf.CurveBezierCubic(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y, "D")
}

func (s *PDFSurface) fill(c color.NRGBA) {
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetAlpha(float64(c.A)/255, "Normal")
}

func (s *PDFSurface) stroke(style render.Style) {
	c := style.Color
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetAlpha(float64(c.A)/255, "Normal")
	s.pdf.SetLineWidth(style.Width)
}

// Output finishes the document into w.
func (s *PDFSurface) Output(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("could not write pdf: %w", err)
	}
	return nil
}

// WritePDF replays the renderer's current frame onto a page of the given
// size and writes the document to w.
func WritePDF(w io.Writer, r *render.FrameRenderer, size render.Size) error {
	s := NewPDFSurface(size)
	r.ReplayOnto(s)
	logger.Infof("exporting %d commands to pdf at %.0fx%.0f", len(r.Frame()), size.W, size.H)
	return s.Output(w)
}
