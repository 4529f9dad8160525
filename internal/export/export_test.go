package export

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"VectorDisplay/internal/config"
	"VectorDisplay/internal/raster"
	"VectorDisplay/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer(t *testing.T) *render.FrameRenderer {
	t.Helper()
	r := render.New(config.Default(), raster.New(0, 0), render.Size{W: 1000, H: 600}, nil)
	t.Cleanup(r.Close)

	r.HandleCommand(render.FrameStartCommand())
	r.HandleCommand(render.PointCommand(render.Point{X: 300, Y: 600}))
	r.HandleCommand(render.LineCommand(render.Point{X: 100, Y: 100}, render.Point{X: 900, Y: 700}))
	r.HandleCommand(render.BezierCommand(
		render.Point{X: 100, Y: 700}, render.Point{X: 300, Y: 200},
		render.Point{X: 700, Y: 200}, render.Point{X: 900, Y: 700},
	))
	r.HandleCommand(render.FrameEndCommand())
	return r
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("frame.PNG")
	require.NoError(t, err)
	assert.Equal(t, PNG, f)

	f, err = FormatFor("out/frame.pdf")
	require.NoError(t, err)
	assert.Equal(t, PDF, f)

	_, err = FormatFor("frame.svg")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWritePNG(t *testing.T) {
	r := testRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, r, render.Size{W: 640, H: 360}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 640, 360), img.Bounds())
	assert.Len(t, r.Frame(), 3, "export leaves the frame alone")
}

func TestWritePDF(t *testing.T) {
	r := testRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, r, render.Size{W: 800, H: 450}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFSurfaceResizeAddsPage(t *testing.T) {
	s := NewPDFSurface(render.Size{W: 100, H: 50})
	s.Resize(render.Size{W: 100, H: 50})
	assert.Equal(t, 1, s.pdf.PageCount())
	s.Resize(render.Size{W: 200, H: 100})
	assert.Equal(t, 2, s.pdf.PageCount())
	assert.Equal(t, render.Size{W: 200, H: 100}, s.Size())
}

func TestWriteFile(t *testing.T) {
	r := testRenderer(t)
	dir := t.TempDir()

	for _, name := range []string{"frame.png", "frame.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(path, r, render.Size{W: 320, H: 180}))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}

	assert.ErrorIs(t, WriteFile(filepath.Join(dir, "frame.gif"), r, render.Size{W: 1, H: 1}), ErrUnknownFormat)
}
