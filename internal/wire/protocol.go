// Package wire maps display commands to and from their JSON messages.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"

	"VectorDisplay/internal/render"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingPoints  = errors.New("missing points")
)

// Params carries the points of a draw message. drawPoint uses Point, the
// other draw commands use Points.
type Params struct {
	Point  *render.Point  `json:"point,omitempty"`
	Points []render.Point `json:"points,omitempty"`
}

// Message is a single command as sent over the channel.
type Message struct {
	Command string  `json:"command"`
	Params  *Params `json:"params,omitempty"`
}

// Decode parses one message into a command.
func Decode(data []byte) (render.Command, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return render.Command{}, fmt.Errorf("could not parse message: %w", err)
	}
	return msg.ToCommand()
}

// ToCommand converts the message into a command.
func (m Message) ToCommand() (render.Command, error) {
	kind, ok := render.ParseKind(m.Command)
	if !ok {
		return render.Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, m.Command)
	}

	cmd := render.Command{Kind: kind}
	n := kind.NumPoints()
	if n == 0 {
		return cmd, nil
	}

	var pts []render.Point
	if m.Params != nil {
		pts = m.Params.Points
		if kind == render.DrawPoint && m.Params.Point != nil {
			pts = []render.Point{*m.Params.Point}
		}
	}
	if len(pts) < n {
		return render.Command{}, fmt.Errorf("%w: %s needs %d, got %d", ErrMissingPoints, m.Command, n, len(pts))
	}
	copy(cmd.Points[:], pts[:n])
	return cmd, nil
}

// NewMessage builds the message for cmd.
func NewMessage(cmd render.Command) Message {
	msg := Message{Command: cmd.Kind.String()}
	switch cmd.Kind {
	case render.DrawPoint:
		p := cmd.Points[0]
		msg.Params = &Params{Point: &p}
	case render.DrawLine, render.DrawCubicBezier:
		msg.Params = &Params{Points: append([]render.Point(nil), cmd.Vertices()...)}
	}
	return msg
}

// Encode produces the JSON message for cmd.
func Encode(cmd render.Command) ([]byte, error) {
	return json.Marshal(NewMessage(cmd))
}
