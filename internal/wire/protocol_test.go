package wire

import (
	"testing"

	"VectorDisplay/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		msg  string
		want render.Command
	}{
		{`{"command":"frameStart"}`, render.FrameStartCommand()},
		{`{"command":"frameEnd","params":{}}`, render.FrameEndCommand()},
		{`{"command":"drawPoint","params":{"point":{"x":300,"y":600}}}`,
			render.PointCommand(render.Point{X: 300, Y: 600})},
		{`{"command":"drawPoint","params":{"points":[{"x":1.5,"y":2}]}}`,
			render.PointCommand(render.Point{X: 1.5, Y: 2})},
		{`{"command":"drawLine","params":{"points":[{"x":100,"y":100},{"x":900,"y":700}]}}`,
			render.LineCommand(render.Point{X: 100, Y: 100}, render.Point{X: 900, Y: 700})},
		{`{"command":"drawCubicBezier","params":{"points":[{"x":100,"y":700},{"x":300,"y":200},{"x":700,"y":200},{"x":900,"y":700}]}}`,
			render.BezierCommand(render.Point{X: 100, Y: 700}, render.Point{X: 300, Y: 200}, render.Point{X: 700, Y: 200}, render.Point{X: 900, Y: 700})},
	}
	for _, c := range cases {
		got, err := Decode([]byte(c.msg))
		require.NoError(t, err, c.msg)
		assert.Equal(t, c.want, got, c.msg)
	}
}

func TestDecodeRejects(t *testing.T) {
	_, err := Decode([]byte(`{"command":"drawSquare"}`))
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = Decode([]byte(`{"command":"drawLine","params":{"points":[{"x":1,"y":1}]}}`))
	assert.ErrorIs(t, err, ErrMissingPoints)

	_, err = Decode([]byte(`{"command":"drawPoint"}`))
	assert.ErrorIs(t, err, ErrMissingPoints)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestEncodeMatchesWireShape(t *testing.T) {
	data, err := Encode(render.PointCommand(render.Point{X: 10, Y: 10}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"drawPoint","params":{"point":{"x":10,"y":10}}}`, string(data))

	data, err = Encode(render.FrameStartCommand())
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"frameStart"}`, string(data))

	data, err = Encode(render.LineCommand(render.Point{X: 0, Y: 0}, render.Point{X: 1920, Y: 1080}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"drawLine","params":{"points":[{"x":0,"y":0},{"x":1920,"y":1080}]}}`, string(data))
}

func TestEncodeDecodeBezier(t *testing.T) {
	cmd := render.BezierCommand(render.Point{X: 1}, render.Point{X: 2}, render.Point{X: 3}, render.Point{X: 4, Y: 5})
	data, err := Encode(cmd)
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, cmd, got)
}
