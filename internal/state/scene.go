package state

import (
	"sync"

	"VectorDisplay/internal/log"
	"VectorDisplay/internal/render"

	"github.com/google/uuid"
)

var logger = log.New("state")

// Scene is the command source's view of what every display is showing:
// the frame being streamed, from its frameStart on. Displays that connect
// mid-stream are brought up to date from a snapshot.
type Scene struct {
	id    string
	clock FrameClock

	mu      sync.RWMutex
	current []render.Command
	ended   bool
}

func NewScene() *Scene {
	return &Scene{id: uuid.NewString()}
}

// ID identifies this scene for the lifetime of the process.
func (s *Scene) ID() string {
	return s.id
}

// Record applies cmd to the scene and returns the number of frames
// completed so far.
func (s *Scene) Record(cmd render.Command) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd.Kind {
	case render.FrameStart:
		s.current = append(s.current[:0], cmd)
		s.ended = false
	case render.FrameEnd:
		s.current = append(s.current, cmd)
		s.ended = true
		n := s.clock.Tick()
		logger.Debugf("frame %d of scene %s complete with %d commands", n, s.id, len(s.current))
		return n
	case render.DrawPoint, render.DrawLine, render.DrawCubicBezier:
		s.current = append(s.current, cmd)
	}
	return s.clock.Now()
}

// Snapshot returns the commands a newly connected display needs to show
// the current frame.
func (s *Scene) Snapshot() []render.Command {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]render.Command, len(s.current))
	copy(out, s.current)
	return out
}

// Ended reports whether the current frame is complete.
func (s *Scene) Ended() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ended
}

// Frames is the number of completed frames.
func (s *Scene) Frames() uint64 {
	return s.clock.Now()
}
