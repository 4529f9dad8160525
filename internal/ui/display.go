package ui

import (
	"image/color"

	"VectorDisplay/internal/config"
	"VectorDisplay/internal/raster"
	"VectorDisplay/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// DisplayWidget shows a FrameRenderer's raster surface. The widget's size is
// the renderer's viewport; the surface sits centred inside it.
//
// Renderer calls happen on the fyne event thread only. Commands arriving on
// other goroutines go through Handle.
type DisplayWidget struct {
	widget.BaseWidget

	surface  *raster.Surface
	renderer *render.FrameRenderer
	bg       color.NRGBA

	viewport render.Size
	sized    bool
	scale    float32 // device pixels per fyne unit at the last layout
}

var _ fyne.Widget = (*DisplayWidget)(nil)

func NewDisplayWidget(cfg config.RenderConfig) *DisplayWidget {
	d := &DisplayWidget{
		surface: raster.New(0, 0),
		bg:      cfg.BkgdColor.NRGBA(),
		scale:   1,
	}
	initial := render.Size{W: cfg.MinWinSize[0], H: cfg.MinWinSize[1]}
	d.renderer = render.New(cfg, d.surface, initial, fyne.Do)
	d.renderer.OnResize = func(render.Size) { d.Refresh() }
	d.ExtendBaseWidget(d)
	return d
}

func (d *DisplayWidget) Renderer() *render.FrameRenderer {
	return d.renderer
}

// Apply executes cmd. It must be called on the event thread.
func (d *DisplayWidget) Apply(cmd render.Command) {
	d.renderer.HandleCommand(cmd)
	d.Refresh()
}

// Handle is safe to call from any goroutine.
func (d *DisplayWidget) Handle(cmd render.Command) {
	fyne.Do(func() {
		d.Apply(cmd)
	})
}

func (d *DisplayWidget) SetFringing(on bool) {
	d.renderer.SetFringing(on)
	d.renderer.Redraw()
	d.Refresh()
}

func (d *DisplayWidget) SetHotspots(on bool) {
	d.renderer.SetHotspots(on)
	d.renderer.Redraw()
	d.Refresh()
}

// layout receives the widget's size. The surface is sized in device pixels
// so HiDPI canvases are not upscaled. The first size is applied at once so
// the initial frame has a surface; later sizes are debounced.
func (d *DisplayWidget) layout(size fyne.Size) {
	d.scale = d.canvasScale()
	viewport := deviceSize(size, d.scale)
	if d.sized && viewport == d.viewport {
		return
	}
	d.viewport = viewport
	if !d.sized {
		d.sized = true
		d.renderer.Resize(viewport)
		return
	}
	d.renderer.ScheduleResize(viewport)
}

func (d *DisplayWidget) canvasScale() float32 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	c := app.Driver().CanvasForObject(d)
	if c == nil || c.Scale() <= 0 {
		return 1
	}
	return c.Scale()
}

func deviceSize(size fyne.Size, scale float32) render.Size {
	return render.Size{W: float64(size.Width * scale), H: float64(size.Height * scale)}
}

func logicalSize(size render.Size, scale float32) fyne.Size {
	return fyne.NewSize(float32(size.W)/scale, float32(size.H)/scale)
}

func (d *DisplayWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &displayRenderer{
		display:    d,
		background: canvas.NewRectangle(d.bg),
		image:      canvas.NewImageFromImage(d.surface.Image()),
	}
	r.image.FillMode = canvas.ImageFillStretch
	r.image.ScaleMode = canvas.ImageScaleFastest
	return r
}

type displayRenderer struct {
	display    *DisplayWidget
	background *canvas.Rectangle
	image      *canvas.Image
	size       fyne.Size
}

func (r *displayRenderer) Layout(size fyne.Size) {
	r.size = size
	r.background.Resize(size)
	r.display.layout(size)
	r.place()
}

// place centres the image on the surface's current size.
func (r *displayRenderer) place() {
	img := logicalSize(r.display.surface.Size(), r.display.scale)
	r.image.Resize(img)
	r.image.Move(fyne.NewPos((r.size.Width-img.Width)/2, (r.size.Height-img.Height)/2))
}

func (r *displayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (r *displayRenderer) Refresh() {
	// a resize swaps the backing image
	r.image.Image = r.display.surface.Image()
	r.place()
	r.image.Refresh()
}

func (r *displayRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.image}
}

func (r *displayRenderer) Destroy() {}
