package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"VectorDisplay/internal/log"

	"github.com/BurntSushi/toml"
)

var logger = log.New("config")

var (
	ErrCanvasSize  = errors.New("canvas_size must be two positive values")
	ErrMinWinSize  = errors.New("min_win_size must be two non-negative values")
	ErrColor       = errors.New("colors need 3 or 4 components in 0-255")
	ErrStrokeWidth = errors.New("default_stroke_width must not be negative")
	ErrPointSize   = errors.New("point_size and hotspot_size must not be negative")
	ErrFringeWidth = errors.New("fringe_width must not be negative")
	ErrDebounce    = errors.New("resize_debounce_ms must not be negative")
)

// Color is an [r, g, b] or [r, g, b, a] list as written in the config
// file, components in 0-255. A missing alpha means opaque. An alpha
// strictly between 0 and 1 is read as a fraction, the way browsers write
// it, so [100, 88, 153, 0.5] is half transparent.
type Color []float64

// NRGBA converts c to a color usable by the surfaces.
func (c Color) NRGBA() color.NRGBA {
	out := color.NRGBA{A: 255}
	if len(c) < 3 {
		return out
	}
	out.R, out.G, out.B = channel(c[0]), channel(c[1]), channel(c[2])
	if len(c) > 3 {
		a := c[3]
		if a > 0 && a < 1 {
			a *= 255
		}
		out.A = channel(a)
	}
	return out
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

func (c Color) valid() bool {
	if len(c) != 3 && len(c) != 4 {
		return false
	}
	for _, v := range c {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// RenderConfig holds the per-session display settings. It is read once at
// startup and handed to the renderer by value.
type RenderConfig struct {
	CanvasSize         [2]float64 `toml:"canvas_size" json:"canvas_size"`
	MinWinSize         [2]float64 `toml:"min_win_size" json:"min_win_size"`
	BkgdColor          Color      `toml:"bkgd_color" json:"bkgd_color"`
	DefaultStrokeColor Color      `toml:"default_stroke_color" json:"default_stroke_color"`
	DefaultStrokeWidth float64    `toml:"default_stroke_width" json:"default_stroke_width"`
	PointSize          float64    `toml:"point_size" json:"point_size"`
	FringeWidth        int        `toml:"fringe_width" json:"fringe_width"`
	FringingColor      Color      `toml:"fringing_color" json:"fringing_color"`
	ColorFringingOn    bool       `toml:"color_fringing_on" json:"color_fringing_on"`
	HotspotsOn         bool       `toml:"hotspots_on" json:"hotspots_on"`
	HotspotSize        float64    `toml:"hotspot_size" json:"hotspot_size"`
	ContentPadding     float64    `toml:"content_padding" json:"content_padding"`
	ResizeDebounceMS   int        `toml:"resize_debounce_ms" json:"resize_debounce_ms"`
}

// Default returns the stock web display settings.
func Default() RenderConfig {
	return RenderConfig{
		CanvasSize:         [2]float64{2000, 1125},
		MinWinSize:         [2]float64{640, 480},
		BkgdColor:          Color{0, 0, 0},
		DefaultStrokeColor: Color{255, 255, 255},
		DefaultStrokeWidth: 2,
		PointSize:          2,
		FringeWidth:        5,
		FringingColor:      Color{100, 88, 153},
		ColorFringingOn:    true,
		HotspotsOn:         true,
		HotspotSize:        5,
		ContentPadding:     20,
		ResizeDebounceMS:   250,
	}
}

// ResizeDebounce is the quiet period before a resize is acted upon.
func (c RenderConfig) ResizeDebounce() time.Duration {
	return time.Duration(c.ResizeDebounceMS) * time.Millisecond
}

// Validate reports the first setting that cannot be rendered with.
func (c RenderConfig) Validate() error {
	if c.CanvasSize[0] <= 0 || c.CanvasSize[1] <= 0 {
		return ErrCanvasSize
	}
	if c.MinWinSize[0] < 0 || c.MinWinSize[1] < 0 {
		return ErrMinWinSize
	}
	for _, col := range []Color{c.BkgdColor, c.DefaultStrokeColor, c.FringingColor} {
		if !col.valid() {
			return ErrColor
		}
	}
	if c.DefaultStrokeWidth < 0 {
		return ErrStrokeWidth
	}
	if c.PointSize < 0 || c.HotspotSize < 0 {
		return ErrPointSize
	}
	if c.FringeWidth < 0 {
		return ErrFringeWidth
	}
	if c.ResizeDebounceMS < 0 {
		return ErrDebounce
	}
	return nil
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (RenderConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("could not read config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warningf("ignoring unknown config key %q in %s", key.String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return RenderConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	logger.Infof("loaded config from %s", path)
	return cfg, nil
}

// DecodeJSON parses JSON over the defaults, using the same keys as the
// TOML form. The browser display is configured this way.
func DecodeJSON(data []byte) (RenderConfig, error) {
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("could not parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RenderConfig{}, err
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults.
func Decode(data string) (RenderConfig, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("could not parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RenderConfig{}, err
	}
	return cfg, nil
}
