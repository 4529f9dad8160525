package render

// Hotspots lists the marker positions for a frame: every point, both ends
// of every line and bezier, then each crossing between two line segments.
func Hotspots(frame []Command) []Point {
	var (
		spots []Point
		lines [][2]Point
	)
	for _, cmd := range frame {
		switch cmd.Kind {
		case DrawPoint:
			spots = append(spots, cmd.Points[0])
		case DrawLine:
			lines = append(lines, [2]Point{cmd.Points[0], cmd.Points[1]})
			spots = append(spots, cmd.Points[0], cmd.Points[1])
		case DrawCubicBezier:
			spots = append(spots, cmd.Points[0], cmd.Points[3])
		}
	}

	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			if p, ok := SegmentIntersection(lines[i], lines[j]); ok {
				spots = append(spots, p)
			}
		}
	}
	return spots
}

// SegmentIntersection returns the crossing point of two segments. Parallel
// and collinear segments never intersect.
func SegmentIntersection(l1, l2 [2]Point) (Point, bool) {
	s10 := Point{X: l1[1].X - l1[0].X, Y: l1[1].Y - l1[0].Y}
	s32 := Point{X: l2[1].X - l2[0].X, Y: l2[1].Y - l2[0].Y}
	denom := cross(s10, s32)
	if denom == 0 {
		return Point{}, false
	}

	d := Point{X: l2[0].X - l1[0].X, Y: l2[0].Y - l1[0].Y}
	t := cross(d, s32) / denom
	u := cross(d, s10) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return Point{X: l1[0].X + t*s10.X, Y: l1[0].Y + t*s10.Y}, true
}

func cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}
