//go:build js && wasm

// Command wasm is the browser display. The page provides a canvas with id
// "display", optional check boxes "fringing" and "hotspots", and may set
// window.vectorDisplayConfig before starting it.
//
// Build it into the page directory next to the Go runtime loader:
//
//	GOOS=js GOARCH=wasm go build -o web/display.wasm ./cmd/wasm
//	cp "$(go env GOROOT)/misc/wasm/wasm_exec.js" web/
//
// then serve the directory with "vectordisplay serve --web web".
package main

import (
	"syscall/js"

	"VectorDisplay/internal/browser"
	"VectorDisplay/internal/config"
	"VectorDisplay/internal/log"
	"VectorDisplay/internal/render"
)

var logger = log.New("wasm")

// tasks carries everything that touches the renderer onto the main loop.
var tasks = make(chan func(), 256)

func dispatch(fn func()) { tasks <- fn }

func main() {
	global := js.Global()
	cfg := loadConfig(global)

	surface, err := browser.NewCanvas("display")
	if err != nil {
		logger.Error(err)
		return
	}
	r := render.New(cfg, surface, viewport(global), dispatch)

	onResize := js.FuncOf(func(this js.Value, args []js.Value) any {
		size := viewport(global)
		dispatch(func() { r.ScheduleResize(size) })
		return nil
	})
	global.Call("addEventListener", "resize", onResize)

	bindToggle(global, "fringing", r.Fringing(), func(on bool) {
		r.SetFringing(on)
		r.Redraw()
	})
	bindToggle(global, "hotspots", r.Hotspots(), func(on bool) {
		r.SetHotspots(on)
		r.Redraw()
	})

	url := socketURL(global)
	browser.Dial(url, func(cmd render.Command) {
		dispatch(func() { r.HandleCommand(cmd) })
	})

	for task := range tasks {
		task()
	}
}

func loadConfig(global js.Value) config.RenderConfig {
	raw := global.Get("vectorDisplayConfig")
	if raw.IsUndefined() || raw.IsNull() {
		return config.Default()
	}
	data := global.Get("JSON").Call("stringify", raw).String()
	cfg, err := config.DecodeJSON([]byte(data))
	if err != nil {
		logger.Errorf("ignoring page config, using defaults: %v", err)
		return config.Default()
	}
	return cfg
}

func viewport(global js.Value) render.Size {
	return render.Size{
		W: global.Get("innerWidth").Float(),
		H: global.Get("innerHeight").Float(),
	}
}

// socketURL points at the hub on the host that served the page.
func socketURL(global js.Value) string {
	loc := global.Get("location")
	scheme := "ws://"
	if loc.Get("protocol").String() == "https:" {
		scheme = "wss://"
	}
	return scheme + loc.Get("host").String() + "/ws"
}

func bindToggle(global js.Value, id string, initial bool, set func(bool)) {
	el := global.Get("document").Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return
	}
	el.Set("checked", initial)
	el.Call("addEventListener", "change", js.FuncOf(func(this js.Value, args []js.Value) any {
		on := el.Get("checked").Bool()
		dispatch(func() { set(on) })
		return nil
	}))
}
