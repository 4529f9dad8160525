//go:build js && wasm

// Package browser binds the renderer to an HTML canvas and the browser's
// WebSocket.
package browser

import (
	"fmt"
	"image/color"
	"math"
	"syscall/js"

	"VectorDisplay/internal/render"
)

var _ render.Surface = (*Canvas)(nil)

// Canvas draws through a canvas element's 2D context. The element's pixel
// size is the surface size.
type Canvas struct {
	el   js.Value
	ctx  js.Value
	size render.Size
}

// NewCanvas binds the element with the given id.
func NewCanvas(id string) (*Canvas, error) {
	el := js.Global().Get("document").Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, fmt.Errorf("no canvas with id %q", id)
	}
	ctx := el.Call("getContext", "2d")
	c := &Canvas{
		el:   el,
		ctx:  ctx,
		size: render.Size{W: el.Get("width").Float(), H: el.Get("height").Float()},
	}
	return c, nil
}

func (c *Canvas) Size() render.Size { return c.size }

// Resize sets the element's backing size, which also clears it.
func (c *Canvas) Resize(size render.Size) {
	c.size = size
	c.el.Set("width", size.W)
	c.el.Set("height", size.H)
	c.ctx.Set("lineCap", "round")
	c.ctx.Set("lineJoin", "round")
}

func (c *Canvas) Clear(bg color.NRGBA) {
	c.ctx.Set("fillStyle", rgba(bg))
	c.ctx.Call("fillRect", 0, 0, c.size.W, c.size.H)
}

func (c *Canvas) FillCircle(center render.Point, radius float64, style render.Style) {
	if radius <= 0 {
		return
	}
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", center.X, center.Y, radius, 0, 2*math.Pi)
	c.ctx.Set("fillStyle", rgba(style.Color))
	c.ctx.Call("fill")
}

func (c *Canvas) StrokeLine(a, b render.Point, style render.Style) {
	if style.Width <= 0 {
		return
	}
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", a.X, a.Y)
	c.ctx.Call("lineTo", b.X, b.Y)
	c.stroke(style)
}

func (c *Canvas) StrokeCubic(p0, p1, p2, p3 render.Point, style render.Style) {
	if style.Width <= 0 {
		return
	}
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", p0.X, p0.Y)
	c.ctx.Call("bezierCurveTo", p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	c.stroke(style)
}

func (c *Canvas) stroke(style render.Style) {
	c.ctx.Set("strokeStyle", rgba(style.Color))
	c.ctx.Set("lineWidth", style.Width)
	c.ctx.Call("stroke")
}

func rgba(c color.NRGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}
