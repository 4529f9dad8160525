//go:build js && wasm

package browser

import (
	"syscall/js"

	"VectorDisplay/internal/log"
	"VectorDisplay/internal/render"
	"VectorDisplay/internal/wire"
)

var logger = log.New("browser")

// Socket receives commands over the browser's WebSocket.
type Socket struct {
	ws    js.Value
	funcs []js.Func

	OnOpen  func()
	OnClose func()
}

// Dial opens url and passes every decodable message to handle. Callbacks
// run on the browser event loop.
func Dial(url string, handle func(render.Command)) *Socket {
	s := &Socket{ws: js.Global().Get("WebSocket").New(url)}

	s.on("open", func(js.Value) {
		logger.Infof("connected to %s", url)
		if s.OnOpen != nil {
			s.OnOpen()
		}
	})
	s.on("close", func(js.Value) {
		logger.Infof("disconnected from %s", url)
		if s.OnClose != nil {
			s.OnClose()
		}
		go s.release()
	})
	s.on("message", func(e js.Value) {
		cmd, err := wire.Decode([]byte(e.Get("data").String()))
		if err != nil {
			logger.Debugf("dropping message: %v", err)
			return
		}
		handle(cmd)
	})
	return s
}

func (s *Socket) on(event string, f func(js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			f(args[0])
		}
		return nil
	})
	s.ws.Call("addEventListener", event, fn)
	s.funcs = append(s.funcs, fn)
}

// Close closes the socket. Its callbacks are released once the close event
// has been delivered.
func (s *Socket) Close() {
	s.ws.Call("close")
}

func (s *Socket) release() {
	for _, fn := range s.funcs {
		fn.Release()
	}
}
