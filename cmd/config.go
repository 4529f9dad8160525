package cmd

import (
	"bytes"
	"fmt"

	"VectorDisplay/internal/config"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ShowConfig prints the effective render settings.
func ShowConfig(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	fmt.Print(configTable(cfg))
	return nil
}

func configTable(cfg config.RenderConfig) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Setting", "Value"})
	for _, row := range [][2]string{
		{"canvas_size", fmt.Sprintf("%g x %g", cfg.CanvasSize[0], cfg.CanvasSize[1])},
		{"min_win_size", fmt.Sprintf("%g x %g", cfg.MinWinSize[0], cfg.MinWinSize[1])},
		{"bkgd_color", fmt.Sprint([]float64(cfg.BkgdColor))},
		{"default_stroke_color", fmt.Sprint([]float64(cfg.DefaultStrokeColor))},
		{"default_stroke_width", fmt.Sprint(cfg.DefaultStrokeWidth)},
		{"point_size", fmt.Sprint(cfg.PointSize)},
		{"fringe_width", fmt.Sprint(cfg.FringeWidth)},
		{"fringing_color", fmt.Sprint([]float64(cfg.FringingColor))},
		{"color_fringing_on", fmt.Sprint(cfg.ColorFringingOn)},
		{"hotspots_on", fmt.Sprint(cfg.HotspotsOn)},
		{"hotspot_size", fmt.Sprint(cfg.HotspotSize)},
		{"content_padding", fmt.Sprint(cfg.ContentPadding)},
		{"resize_debounce_ms", fmt.Sprint(cfg.ResizeDebounceMS)},
	} {
		table.Append(row[:])
	}
	table.Render()
	return buf.String()
}
