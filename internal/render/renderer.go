package render

import (
	"image/color"

	"VectorDisplay/internal/config"
	"VectorDisplay/internal/log"
)

var logger = log.New("render")

// FrameRenderer paints display commands onto a surface, scaling them from
// the virtual canvas, and keeps the commands of the current frame so they
// can be painted again after the surface changes size.
//
// A FrameRenderer is not safe for concurrent use. All calls, including the
// debounced resize, are expected on a single event thread.
type FrameRenderer struct {
	cfg       config.RenderConfig
	surface   Surface
	transform Transform

	bg, stroke, fringeColor color.NRGBA

	frame []Command
	ended bool

	fringing bool
	hotspots bool

	resize *Debouncer

	// OnResize is called after a resize once the frame has been replayed.
	OnResize func(Size)
}

// New binds a renderer to surface and sizes the surface to the largest
// 16:9 area that fits in viewport. dispatch runs debounced resizes on the
// caller's event thread. Without a dispatch there is no thread to defer
// onto, so ScheduleResize resizes at once.
func New(cfg config.RenderConfig, surface Surface, viewport Size, dispatch func(func())) *FrameRenderer {
	r := &FrameRenderer{
		cfg:         cfg,
		surface:     surface,
		bg:          cfg.BkgdColor.NRGBA(),
		stroke:      cfg.DefaultStrokeColor.NRGBA(),
		fringeColor: cfg.FringingColor.NRGBA(),
		fringing:    cfg.ColorFringingOn,
		hotspots:    cfg.HotspotsOn,
	}
	if dispatch != nil {
		r.resize = NewDebouncer(cfg.ResizeDebounce(), dispatch)
	}
	r.surface.Resize(Fit(viewport, cfg.ContentPadding))
	r.updateTransform()
	r.surface.Clear(r.bg)
	return r
}

// HandleCommand executes cmd against the surface. Draw commands are also
// recorded for replay.
func (r *FrameRenderer) HandleCommand(cmd Command) {
	switch cmd.Kind {
	case FrameStart:
		logger.Debug("starting new frame")
		r.surface.Clear(r.bg)
		r.frame = r.frame[:0]
		r.ended = false
	case FrameEnd:
		logger.Debugf("ending frame with %d commands", len(r.frame))
		r.ended = true
		r.postProcess()
	case DrawPoint, DrawLine, DrawCubicBezier:
		r.draw(cmd)
		r.frame = append(r.frame, cmd)
	default:
		logger.Debugf("ignoring command of kind %d", cmd.Kind)
	}
}

// Resize fits the surface into viewport, derives a new transform and
// replays the current frame.
func (r *FrameRenderer) Resize(viewport Size) {
	r.surface.Resize(Fit(viewport, r.cfg.ContentPadding))
	r.updateTransform()
	r.replay()

	size := r.surface.Size()
	logger.Debugf("resized surface to %.0fx%.0f, replayed %d commands", size.W, size.H, len(r.frame))
	if r.OnResize != nil {
		r.OnResize(size)
	}
}

// ScheduleResize resizes once viewport changes have been quiet for the
// configured debounce period. A later call supersedes a pending one.
func (r *FrameRenderer) ScheduleResize(viewport Size) {
	if r.resize == nil {
		r.Resize(viewport)
		return
	}
	r.resize.Trigger(func() {
		r.Resize(viewport)
	})
}

// Redraw repaints the current frame without resizing, picking up toggle
// changes.
func (r *FrameRenderer) Redraw() {
	r.replay()
}

// ReplayOnto paints the current frame onto another surface at that
// surface's size, using this renderer's settings and toggles.
func (r *FrameRenderer) ReplayOnto(s Surface) {
	other := &FrameRenderer{
		cfg:         r.cfg,
		surface:     s,
		bg:          r.bg,
		stroke:      r.stroke,
		fringeColor: r.fringeColor,
		frame:       r.Frame(),
		ended:       r.ended,
		fringing:    r.fringing,
		hotspots:    r.hotspots,
	}
	other.updateTransform()
	other.replay()
}

// Close cancels any pending resize.
func (r *FrameRenderer) Close() {
	if r.resize != nil {
		r.resize.Stop()
	}
}

// ScalePoint maps a virtual point onto the surface.
func (r *FrameRenderer) ScalePoint(p Point) Point {
	return r.transform.Point(p)
}

// ScaleLength maps a virtual length onto the surface.
func (r *FrameRenderer) ScaleLength(n float64) float64 {
	return r.transform.Length(n)
}

func (r *FrameRenderer) Transform() Transform { return r.transform }

func (r *FrameRenderer) Config() config.RenderConfig { return r.cfg }

func (r *FrameRenderer) Surface() Surface { return r.surface }

// Frame returns a copy of the commands recorded since the last frameStart.
func (r *FrameRenderer) Frame() []Command {
	out := make([]Command, len(r.frame))
	copy(out, r.frame)
	return out
}

// Ended reports whether the current frame has seen its frameEnd.
func (r *FrameRenderer) Ended() bool { return r.ended }

func (r *FrameRenderer) Fringing() bool { return r.fringing }

func (r *FrameRenderer) Hotspots() bool { return r.hotspots }

func (r *FrameRenderer) SetFringing(on bool) { r.fringing = on }

func (r *FrameRenderer) SetHotspots(on bool) { r.hotspots = on }

func (r *FrameRenderer) updateTransform() {
	r.transform = NewTransform(r.cfg.CanvasSize, r.surface.Size())
}

func (r *FrameRenderer) replay() {
	r.surface.Clear(r.bg)
	for _, cmd := range r.frame {
		r.draw(cmd)
	}
	if r.ended {
		r.postProcess()
	}
}

func (r *FrameRenderer) draw(cmd Command) {
	stroke := Style{Color: r.stroke, Width: r.ScaleLength(r.cfg.DefaultStrokeWidth)}

	switch cmd.Kind {
	case DrawPoint:
		r.dot(cmd.Points[0], r.cfg.PointSize)
	case DrawLine:
		a, b := r.ScalePoint(cmd.Points[0]), r.ScalePoint(cmd.Points[1])
		r.fringe(func(st Style) {
			r.surface.StrokeLine(a, b, st)
		})
		r.surface.StrokeLine(a, b, stroke)
	case DrawCubicBezier:
		p0, p1 := r.ScalePoint(cmd.Points[0]), r.ScalePoint(cmd.Points[1])
		p2, p3 := r.ScalePoint(cmd.Points[2]), r.ScalePoint(cmd.Points[3])
		r.fringe(func(st Style) {
			r.surface.StrokeCubic(p0, p1, p2, p3, st)
		})
		r.surface.StrokeCubic(p0, p1, p2, p3, stroke)
	}
}

// dot fills a circle of the given virtual diameter in the stroke color.
func (r *FrameRenderer) dot(p Point, diameter float64) {
	c := r.ScalePoint(p)
	radius := r.ScaleLength(diameter) / 2
	r.fringe(func(st Style) {
		r.surface.FillCircle(c, radius+st.Width/2, Style{Color: st.Color})
	})
	r.surface.FillCircle(c, radius, Style{Color: r.stroke})
}

// fringe paints the glow layers that go under a primitive, widest and
// faintest first.
func (r *FrameRenderer) fringe(paint func(Style)) {
	n := r.cfg.FringeWidth
	if !r.fringing || n <= 0 {
		return
	}
	for i := n; i > 0; i-- {
		col := r.fringeColor
		col.A = uint8(float64(col.A) * float64(n-i+1) / float64(n))
		paint(Style{Color: col, Width: r.ScaleLength(float64(2 * i))})
	}
}

func (r *FrameRenderer) postProcess() {
	if !r.hotspots {
		return
	}
	for _, p := range Hotspots(r.frame) {
		r.dot(p, r.cfg.HotspotSize)
	}
}
