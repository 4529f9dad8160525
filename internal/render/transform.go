package render

import "math"

// Size is a width/height pair in device pixels.
type Size struct {
	W, H float64
}

// aspect of the display area; fixed regardless of the virtual canvas size.
const (
	aspectW = 16.0
	aspectH = 9.0
)

// Fit returns the largest 16:9 area that fits in viewport once padding is
// taken off every side. Width-fill is preferred; when the resulting height
// overflows, the height is filled instead. Results are whole pixels.
func Fit(viewport Size, padding float64) Size {
	maxW := viewport.W - 2*padding
	maxH := viewport.H - 2*padding
	if maxW <= 0 || maxH <= 0 {
		return Size{}
	}

	w := maxW
	h := w * (aspectH / aspectW)
	if h > maxH {
		h = maxH
		w = h * (aspectW / aspectH)
	}
	return Size{W: math.Floor(w), H: math.Floor(h)}
}

// Transform maps virtual canvas coordinates onto surface pixels.
type Transform struct {
	SX, SY float64

	canvas  [2]float64
	surface Size
}

// NewTransform derives the ratios between a surface and the virtual canvas.
func NewTransform(canvas [2]float64, surface Size) Transform {
	if canvas[0] <= 0 || canvas[1] <= 0 {
		return Transform{}
	}
	return Transform{
		SX:      surface.W / canvas[0],
		SY:      surface.H / canvas[1],
		canvas:  canvas,
		surface: surface,
	}
}

// Point scales each axis independently. Multiplying before dividing keeps
// the canvas edge exactly on the surface edge.
func (t Transform) Point(p Point) Point {
	if t.canvas[0] == 0 {
		return Point{}
	}
	return Point{
		X: p.X * t.surface.W / t.canvas[0],
		Y: p.Y * t.surface.H / t.canvas[1],
	}
}

// Length uses the smaller ratio on both axes so that widths and radii keep
// their shape when the surface is not exactly the canvas aspect.
func (t Transform) Length(n float64) float64 {
	return n * math.Min(t.SX, t.SY)
}
