package cmd

import (
	"context"
	"fmt"
	"time"

	"VectorDisplay/internal/net"
	"VectorDisplay/internal/ui"

	"github.com/urfave/cli"
)

const browseTimeout = 5 * time.Second

// Display opens the desktop display and connects it to a command source.
func Display(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	address, err := net.ParseLink(ctx.Args().First())
	if err != nil {
		logger.Error(err)
		return err
	}

	app := ui.NewApp(cfg, "Vector Display")
	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go connect(runCtx, app, address)
	app.Run()
	return nil
}

// connect feeds the display from the source at address, browsing for one
// when address is empty.
func connect(ctx context.Context, app *ui.App, address string) {
	if address == "" {
		app.SetStatus("Looking for a command source...")
		found, err := net.Browse(ctx, browseTimeout)
		if err != nil {
			logger.Warning(err)
			app.SetStatus("No command source found")
			return
		}
		address = found
	}

	app.SetStatus("Connecting to " + address)
	client, err := net.Dial(ctx, address)
	if err != nil {
		app.SetStatus(fmt.Sprintf("Connection failed: %v", err))
		return
	}
	go func() {
		<-ctx.Done()
		client.Close()
	}()

	app.SetStatus("Connected to " + address + " as " + client.LocalAddr())
	err = client.Run(app.Display().Handle)
	if ctx.Err() == nil {
		logger.Warning(err)
		app.SetStatus(fmt.Sprintf("Disconnected from source: %v", err))
	}
}
