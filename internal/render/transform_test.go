package render

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFitPrefersWidth(t *testing.T) {
	assert.Equal(t, Size{W: 960, H: 540}, Fit(Size{W: 1000, H: 1000}, 20))
	assert.Equal(t, Size{W: 1920, H: 1080}, Fit(Size{W: 1920, H: 1080}, 0))
}

func TestFitFallsBackToHeight(t *testing.T) {
	// 1960 wide would need 1102.5 rows, only 560 are available
	assert.Equal(t, Size{W: 995, H: 560}, Fit(Size{W: 2000, H: 600}, 20))
}

func TestFitOnTinyViewport(t *testing.T) {
	assert.Equal(t, Size{}, Fit(Size{W: 30, H: 30}, 20))
	assert.Equal(t, Size{}, Fit(Size{}, 0))
}

func TestTransformWithoutCanvas(t *testing.T) {
	tr := NewTransform([2]float64{0, 0}, Size{W: 100, H: 100})
	assert.Equal(t, Point{}, tr.Point(Point{X: 5, Y: 5}))
	assert.Equal(t, 0.0, tr.Length(5))
}

func TestCommandKinds(t *testing.T) {
	for _, k := range []Kind{FrameStart, FrameEnd, DrawPoint, DrawLine, DrawCubicBezier} {
		parsed, ok := ParseKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, parsed)
	}
	_, ok := ParseKind("drawSquare")
	assert.False(t, ok)
	_, ok = ParseKind("")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Kind(99).String())

	assert.Len(t, BezierCommand(Point{}, Point{}, Point{}, Point{X: 1}).Vertices(), 4)
	assert.Empty(t, FrameEndCommand().Vertices())
	assert.False(t, FrameStart.IsDraw())
	assert.True(t, DrawPoint.IsDraw())
}

func TestSegmentIntersection(t *testing.T) {
	p, ok := SegmentIntersection(
		[2]Point{{X: 100, Y: 100}, {X: 900, Y: 700}},
		[2]Point{{X: 500, Y: 50}, {X: 500, Y: 750}},
	)
	assert.True(t, ok)
	assert.InDelta(t, 500, p.X, 1e-9)
	assert.InDelta(t, 400, p.Y, 1e-9)

	_, ok = SegmentIntersection(
		[2]Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
		[2]Point{{X: 0, Y: 5}, {X: 10, Y: 5}},
	)
	assert.False(t, ok, "parallel")

	_, ok = SegmentIntersection(
		[2]Point{{X: 0, Y: 0}, {X: 10, Y: 10}},
		[2]Point{{X: 20, Y: 0}, {X: 15, Y: 5}},
	)
	assert.False(t, ok, "lines cross outside the second segment")
}

func TestHotspotsOrder(t *testing.T) {
	spots := Hotspots([]Command{
		PointCommand(Point{X: 1, Y: 2}),
		BezierCommand(Point{X: 0, Y: 0}, Point{X: 1, Y: 1}, Point{X: 2, Y: 2}, Point{X: 3, Y: 0}),
		FrameEndCommand(),
	})
	assert.Equal(t, []Point{{X: 1, Y: 2}, {X: 0, Y: 0}, {X: 3, Y: 0}}, spots)
}

func TestDebouncerRunsOnce(t *testing.T) {
	var calls, last int32
	d := NewDebouncer(10*time.Millisecond, nil)
	for i := int32(1); i <= 5; i++ {
		i := i
		d.Trigger(func() {
			atomic.AddInt32(&calls, 1)
			atomic.StoreInt32(&last, i)
		})
	}

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, int32(5), atomic.LoadInt32(&last))
}

func TestDebouncerStop(t *testing.T) {
	var calls int32
	d := NewDebouncer(10*time.Millisecond, nil)
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	d.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
