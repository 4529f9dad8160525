package cmd

import (
	"VectorDisplay/internal/config"
	"VectorDisplay/internal/log"

	"github.com/urfave/cli"
)

var logger = log.New("vectordisplay")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// loadConfig reads the file named by --config over the defaults.
func loadConfig(ctx *cli.Context) (config.RenderConfig, error) {
	cfg, err := config.Load(ctx.GlobalString("config"))
	if err != nil {
		logger.Error(err)
		return config.RenderConfig{}, err
	}
	return cfg, nil
}
