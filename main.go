package main

import (
	"os"
	"strings"
	"time"

	"VectorDisplay/cmd"
	"VectorDisplay/internal/net"

	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	// opened through a share link
	args := os.Args
	if len(args) > 1 && strings.HasPrefix(args[1], net.URLScheme) {
		args = []string{args[0], "display", args[1]}
	}

	app := cli.NewApp()
	app.Name = "vectordisplay"
	app.Usage = "show streamed vector frames on a resizable display"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "TOML file with render settings",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Action = cmd.Display
	app.Commands = []cli.Command{
		{
			Name:  "display",
			Usage: "open the display and connect to a command source",
			Description: `
Connect to the command source named by the link argument, which may be a
share link (vectordisplay://host:port) or a plain host:port. Without a link
the local network is browsed for a source.`,
			ArgsUsage: "[link]",
			Action:    cmd.Display,
		},
		{
			Name:  "serve",
			Usage: "run a command source streaming a demo scene",
			Description: `
Stream the chosen demo to every display that connects on /ws. With --web
the browser display is served as well; build it first with

   GOOS=js GOARCH=wasm go build -o web/display.wasm ./cmd/wasm
   cp "$(go env GOROOT)/misc/wasm/wasm_exec.js" web/`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: net.DefaultPort,
					Usage: "port to listen on",
				},
				cli.StringFlag{
					Name:  "demo",
					Value: "static",
					Usage: "demo scene: static or rotate",
				},
				cli.DurationFlag{
					Name:  "interval",
					Value: 33 * time.Millisecond,
					Usage: "frame interval of the rotate demo",
				},
				cli.BoolTFlag{
					Name:  "mdns",
					Usage: "advertise the source on the local network",
				},
				cli.StringFlag{
					Name:  "web",
					Usage: "directory with the browser display to serve (index.html, display.wasm, wasm_exec.js)",
				},
			},
			Action: cmd.Serve,
		},
		{
			Name:        "snapshot",
			Usage:       "write one frame from a command source to a file",
			Description: `The output format follows the file extension: .png or .pdf.`,
			ArgsUsage:   "[link]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 1920,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 1080,
					Usage: "frame height",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "output filename",
				},
				cli.DurationFlag{
					Name:  "timeout",
					Value: 10 * time.Second,
					Usage: "how long to wait for a complete frame",
				},
			},
			Action: cmd.Snapshot,
		},
		{
			Name:   "config",
			Usage:  "print the effective render settings",
			Action: cmd.ShowConfig,
		},
	}

	if err := app.Run(args); err != nil {
		os.Exit(1)
	}
}
