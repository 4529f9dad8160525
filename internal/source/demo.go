// Package source produces demo command streams for the serve command.
package source

import (
	"context"
	"math"
	"time"

	"VectorDisplay/internal/render"
)

// Sink receives commands in order.
type Sink interface {
	Send(cmd render.Command)
}

// TestScene is a single frame with one of each draw command.
func TestScene() []render.Command {
	return []render.Command{
		render.FrameStartCommand(),
		render.PointCommand(render.Point{X: 300, Y: 600}),
		render.LineCommand(render.Point{X: 100, Y: 100}, render.Point{X: 900, Y: 700}),
		render.LineCommand(render.Point{X: 500, Y: 50}, render.Point{X: 500, Y: 750}),
		render.BezierCommand(
			render.Point{X: 100, Y: 700}, render.Point{X: 300, Y: 200},
			render.Point{X: 700, Y: 200}, render.Point{X: 900, Y: 700},
		),
		render.FrameEndCommand(),
	}
}

// RotatingLines spins a fixed set of lines around their own centres, one
// degree further on each frame.
type RotatingLines struct {
	canvas [2]float64
	lines  [][2]render.Point
	angle  float64
}

// NewRotatingLines places four lines crossing near the middle of a canvas
// of the given size.
func NewRotatingLines(canvas [2]float64) *RotatingLines {
	w, h := canvas[0], canvas[1]
	return &RotatingLines{
		canvas: canvas,
		lines: [][2]render.Point{
			{{X: w * 0.25, Y: h * 0.25}, {X: w * 0.75, Y: h * 0.75}},
			{{X: w * 0.25, Y: h * 0.75}, {X: w * 0.75, Y: h * 0.25}},
			{{X: w * 0.5, Y: h * 0.1}, {X: w * 0.5, Y: h * 0.9}},
			{{X: w * 0.05, Y: h * 0.5}, {X: w * 0.95, Y: h * 0.5}},
		},
	}
}

// Next advances the rotation and returns the resulting frame.
func (r *RotatingLines) Next() []render.Command {
	r.angle += math.Pi / 180
	sin, cos := math.Sincos(r.angle)

	frame := make([]render.Command, 0, len(r.lines)+2)
	frame = append(frame, render.FrameStartCommand())
	for _, l := range r.lines {
		cx, cy := (l[0].X+l[1].X)/2, (l[0].Y+l[1].Y)/2
		a := r.clamp(rotate(l[0], cx, cy, sin, cos))
		b := r.clamp(rotate(l[1], cx, cy, sin, cos))
		frame = append(frame, render.LineCommand(a, b))
	}
	return append(frame, render.FrameEndCommand())
}

func rotate(p render.Point, cx, cy, sin, cos float64) render.Point {
	x, y := p.X-cx, p.Y-cy
	return render.Point{X: x*cos - y*sin + cx, Y: x*sin + y*cos + cy}
}

func (r *RotatingLines) clamp(p render.Point) render.Point {
	return render.Point{
		X: math.Max(0, math.Min(r.canvas[0], p.X)),
		Y: math.Max(0, math.Min(r.canvas[1], p.Y)),
	}
}

// Send writes every command of frame to sink.
func Send(sink Sink, frame []render.Command) {
	for _, cmd := range frame {
		sink.Send(cmd)
	}
}

// Animate sends a new frame from next on every tick until ctx is done.
func Animate(ctx context.Context, sink Sink, interval time.Duration, next func() []render.Command) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			Send(sink, next())
		}
	}
}
