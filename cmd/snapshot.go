package cmd

import (
	"context"
	"errors"
	"fmt"

	"VectorDisplay/internal/config"
	"VectorDisplay/internal/export"
	"VectorDisplay/internal/net"
	"VectorDisplay/internal/raster"
	"VectorDisplay/internal/render"

	"github.com/urfave/cli"
)

var errNoFrame = errors.New("no complete frame received")

// Snapshot connects to a command source, waits for one complete frame and
// writes it to an image or PDF file.
func Snapshot(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	cfg.ContentPadding = 0

	out := ctx.String("out")
	if _, err := export.FormatFor(out); err != nil {
		logger.Error(err)
		return err
	}

	address, err := net.ParseLink(ctx.Args().First())
	if err != nil {
		logger.Error(err)
		return err
	}

	runCtx, cancel := context.WithTimeout(context.Background(), ctx.Duration("timeout"))
	defer cancel()

	if address == "" {
		if address, err = net.Browse(runCtx, browseTimeout); err != nil {
			logger.Error(err)
			return err
		}
	}

	client, err := net.Dial(runCtx, address)
	if err != nil {
		return err
	}
	defer client.Close()

	viewport := render.Size{W: float64(ctx.Int("width")), H: float64(ctx.Int("height"))}
	r, err := captureFrame(runCtx, cfg, viewport, client)
	if err != nil {
		logger.Error(err)
		return err
	}
	defer r.Close()

	if err := export.WriteFile(out, r, r.Surface().Size()); err != nil {
		logger.Error(err)
		return err
	}
	logger.Noticef("wrote %d commands to %s", len(r.Frame()), out)
	return nil
}

// captureFrame renders commands from client until a frame that started
// after connecting has ended.
func captureFrame(ctx context.Context, cfg config.RenderConfig, viewport render.Size, client *net.Client) (*render.FrameRenderer, error) {
	cmds := make(chan render.Command, 64)
	errc := make(chan error, 1)
	go func() {
		errc <- client.Run(func(cmd render.Command) {
			select {
			case cmds <- cmd:
			case <-ctx.Done():
			}
		})
	}()

	r := render.New(cfg, raster.New(0, 0), viewport, nil)
	started := false
	for {
		select {
		case cmd := <-cmds:
			r.HandleCommand(cmd)
			switch cmd.Kind {
			case render.FrameStart:
				started = true
			case render.FrameEnd:
				if started {
					return r, nil
				}
			}
		case err := <-errc:
			r.Close()
			return nil, fmt.Errorf("%w: %v", errNoFrame, err)
		case <-ctx.Done():
			r.Close()
			return nil, fmt.Errorf("%w: %v", errNoFrame, ctx.Err())
		}
	}
}
