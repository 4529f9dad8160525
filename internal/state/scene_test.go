package state

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"VectorDisplay/internal/log"
	"VectorDisplay/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneTracksCurrentFrame(t *testing.T) {
	s := NewScene()
	assert.NotEmpty(t, s.ID())
	assert.Empty(t, s.Snapshot())

	s.Record(render.FrameStartCommand())
	s.Record(render.PointCommand(render.Point{X: 10, Y: 10}))
	assert.False(t, s.Ended())
	assert.Len(t, s.Snapshot(), 2)

	n := s.Record(render.FrameEndCommand())
	assert.Equal(t, uint64(1), n)
	assert.True(t, s.Ended())
	snap := s.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, render.FrameStart, snap[0].Kind)
	assert.Equal(t, render.FrameEnd, snap[2].Kind)

	s.Record(render.FrameStartCommand())
	assert.Equal(t, []render.Command{render.FrameStartCommand()}, s.Snapshot())
	assert.Len(t, snap, 3, "snapshots are copies")
	assert.Equal(t, uint64(1), s.Frames())
}

func TestSceneIgnoresUnknownKinds(t *testing.T) {
	s := NewScene()
	s.Record(render.Command{Kind: render.Kind(77)})
	assert.Empty(t, s.Snapshot())
}

func TestSceneConcurrentRecord(t *testing.T) {
	s := NewScene()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Record(render.FrameStartCommand())
				s.Record(render.FrameEndCommand())
				_ = s.Snapshot()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(400), s.Frames())
}

func TestFrameClock(t *testing.T) {
	var c FrameClock
	assert.Equal(t, uint64(0), c.Now())
	assert.Equal(t, uint64(1), c.Tick())
	assert.Equal(t, uint64(2), c.Tick())
	assert.Equal(t, uint64(2), c.Now())
}

func TestSceneLogsUnderModuleName(t *testing.T) {
	var buf bytes.Buffer
	log.SetSink(&buf)
	log.SetLevel(log.Debug)
	defer func() {
		log.SetSink(os.Stdout)
		log.SetLevel(log.Notice)
	}()

	s := NewScene()
	s.Record(render.FrameStartCommand())
	s.Record(render.FrameEndCommand())

	out := buf.String()
	assert.Contains(t, out, "[state]")
	assert.Contains(t, out, "frame 1 of scene "+s.ID())
	assert.NotContains(t, out, "[SCENE")
}
