package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"VectorDisplay/internal/config"
	"VectorDisplay/internal/net"
	"VectorDisplay/internal/source"
	"VectorDisplay/internal/state"

	"github.com/urfave/cli"
)

// Serve runs a command source that streams one of the demo scenes to every
// connected display.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := ctx.Int("port")
	scene := state.NewScene()
	hub := net.NewHub(scene)

	switch demo := ctx.String("demo"); demo {
	case "static":
		source.Send(hub, source.TestScene())
	case "rotate":
		lines := source.NewRotatingLines(cfg.CanvasSize)
		go source.Animate(runCtx, hub, ctx.Duration("interval"), lines.Next)
	default:
		err := fmt.Errorf("unknown demo %q", demo)
		logger.Error(err)
		return err
	}

	if ctx.BoolT("mdns") {
		server, err := net.Advertise(port, scene.ID())
		if err != nil {
			logger.Warningf("not advertising: %v", err)
		} else {
			defer server.Shutdown()
		}
	}

	var static http.Handler
	if dir := ctx.String("web"); dir != "" {
		static = webHandler(cfg, dir)
	}

	logger.Noticef("share link: %s", net.ShareLink(net.GetOutgoingIP(), port))
	return hub.ListenAndServe(runCtx, fmt.Sprintf(":%d", port), static)
}

// webHandler serves the browser display from dir along with the effective
// config as /config.json.
func webHandler(cfg config.RenderConfig, dir string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/config.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cfg); err != nil {
			logger.Errorf("could not write config: %v", err)
		}
	})
	mux.Handle("/", http.FileServer(http.Dir(dir)))
	return mux
}
