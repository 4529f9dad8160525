package render

// Point is a position in virtual canvas space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Kind identifies one of the commands a display understands.
type Kind uint8

const (
	FrameStart Kind = iota + 1
	FrameEnd
	DrawPoint
	DrawLine
	DrawCubicBezier
)

var kindNames = [...]string{
	FrameStart:      "frameStart",
	FrameEnd:        "frameEnd",
	DrawPoint:       "drawPoint",
	DrawLine:        "drawLine",
	DrawCubicBezier: "drawCubicBezier",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a wire name back onto its kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n != "" && n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// NumPoints is the number of points a command of this kind carries.
func (k Kind) NumPoints() int {
	switch k {
	case DrawPoint:
		return 1
	case DrawLine:
		return 2
	case DrawCubicBezier:
		return 4
	}
	return 0
}

// IsDraw reports whether commands of this kind paint and get buffered.
func (k Kind) IsDraw() bool {
	return k.NumPoints() > 0
}

// Command is a single display instruction. Only the first Kind.NumPoints()
// entries of Points are meaningful.
type Command struct {
	Kind   Kind
	Points [4]Point
}

// Vertices returns the points used by the command.
func (c Command) Vertices() []Point {
	return c.Points[:c.Kind.NumPoints()]
}

func FrameStartCommand() Command { return Command{Kind: FrameStart} }

func FrameEndCommand() Command { return Command{Kind: FrameEnd} }

func PointCommand(p Point) Command {
	return Command{Kind: DrawPoint, Points: [4]Point{p}}
}

func LineCommand(a, b Point) Command {
	return Command{Kind: DrawLine, Points: [4]Point{a, b}}
}

func BezierCommand(p0, p1, p2, p3 Point) Command {
	return Command{Kind: DrawCubicBezier, Points: [4]Point{p0, p1, p2, p3}}
}
