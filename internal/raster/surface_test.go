package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"VectorDisplay/internal/config"
	"VectorDisplay/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
)

func isBlank(img *image.RGBA, bg color.NRGBA) bool {
	want := color.RGBAModel.Convert(bg)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.At(x, y) != want {
				return false
			}
		}
	}
	return true
}

func TestClear(t *testing.T) {
	s := New(40, 30)
	s.Clear(black)
	assert.True(t, isBlank(s.Image(), black))
	assert.Equal(t, render.Size{W: 40, H: 30}, s.Size())
}

func TestStrokeLine(t *testing.T) {
	s := New(100, 100)
	s.Clear(black)
	s.StrokeLine(render.Point{X: 10, Y: 50}, render.Point{X: 90, Y: 50}, render.Style{Color: white, Width: 4})

	r, _, _, _ := s.Image().At(50, 50).RGBA()
	assert.Greater(t, r>>8, uint32(200))
	r, _, _, _ = s.Image().At(50, 10).RGBA()
	assert.Equal(t, uint32(0), r)
}

func TestStrokeWithoutWidthPaintsNothing(t *testing.T) {
	s := New(50, 50)
	s.Clear(black)
	s.StrokeLine(render.Point{X: 0, Y: 0}, render.Point{X: 50, Y: 50}, render.Style{Color: white})
	s.StrokeCubic(render.Point{}, render.Point{X: 10}, render.Point{X: 20}, render.Point{X: 50, Y: 50}, render.Style{Color: white})
	s.FillCircle(render.Point{X: 25, Y: 25}, 0, render.Style{Color: white})
	assert.True(t, isBlank(s.Image(), black))
}

func TestFillCircle(t *testing.T) {
	s := New(40, 40)
	s.Clear(black)
	s.FillCircle(render.Point{X: 20, Y: 20}, 6, render.Style{Color: red})

	r, g, _, _ := s.Image().At(20, 20).RGBA()
	assert.Greater(t, r>>8, uint32(240))
	assert.Equal(t, uint32(0), g)
	r, _, _, _ = s.Image().At(2, 2).RGBA()
	assert.Equal(t, uint32(0), r)
}

func TestResize(t *testing.T) {
	s := New(10, 10)
	img := s.Image()
	s.Resize(render.Size{W: 10, H: 10})
	assert.Same(t, img, s.Image())

	s.Resize(render.Size{W: 64.7, H: 36.2})
	assert.Equal(t, render.Size{W: 64, H: 36}, s.Size())
}

func TestWritePNG(t *testing.T) {
	s := New(32, 18)
	s.Clear(white)

	var buf bytes.Buffer
	require.NoError(t, s.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 18), img.Bounds())
}

func TestRendererOnRaster(t *testing.T) {
	cfg := config.Default()
	cfg.CanvasSize = [2]float64{1920, 1080}
	cfg.ColorFringingOn = false
	cfg.HotspotsOn = false
	cfg.PointSize = 8

	s := New(0, 0)
	r := render.New(cfg, s, render.Size{W: 1960, H: 1120}, nil)
	defer r.Close()
	require.Equal(t, render.Size{W: 1920, H: 1080}, s.Size())

	r.HandleCommand(render.FrameStartCommand())
	r.HandleCommand(render.PointCommand(render.Point{X: 100, Y: 100}))
	r.HandleCommand(render.FrameEndCommand())
	assert.False(t, isBlank(s.Image(), black))

	r.Resize(render.Size{W: 1000, H: 580})
	require.Equal(t, render.Size{W: 960, H: 540}, s.Size())
	rr, _, _, _ := s.Image().At(50, 50).RGBA()
	assert.Greater(t, rr>>8, uint32(200), "point replayed at half scale")

	r.HandleCommand(render.FrameStartCommand())
	assert.True(t, isBlank(s.Image(), black))
}
