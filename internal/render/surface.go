package render

import "image/color"

// Style is the paint used for a single primitive. Width is ignored by fills.
type Style struct {
	Color color.NRGBA
	Width float64
}

// Surface is a 2D drawing target in device pixels.
type Surface interface {
	Size() Size
	Resize(size Size)
	Clear(bg color.NRGBA)
	FillCircle(center Point, radius float64, style Style)
	StrokeLine(a, b Point, style Style)
	StrokeCubic(p0, p1, p2, p3 Point, style Style)
}
