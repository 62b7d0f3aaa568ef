package app

import (
	"flag"
	"strings"

	"iris/internal/engine"
	"iris/internal/stages"
)

// HUDWidth is the width of the parameter panel right of the canvas.
const HUDWidth = 260

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	TPS      int
	Mobile   bool
	Stages   string
	Trails   bool
	HUD      bool
	Progress float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:  960,
		Height: 720,
		TPS:    60,
		Stages: strings.Join(stages.DefaultSequence, ","),
		Trails: true,
		HUD:    true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Mobile, "mobile", c.Mobile, "use the mobile profile (40 particles, no trails or halos, every second frame)")
	fs.StringVar(&c.Stages, "stages", c.Stages, "comma separated stage sequence")
	fs.BoolVar(&c.Trails, "trails", c.Trails, "draw motion trails (desktop profile only)")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
	fs.Float64Var(&c.Progress, "progress", c.Progress, "initial stage progress")
}

// EngineConfig derives the engine configuration. The mobile profile always
// runs without trails.
func (c *Config) EngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Mobile = c.Mobile
	cfg.Stages = engine.ParseStages(c.Stages)
	cfg.Trails = c.Trails && !c.Mobile
	return cfg
}

// FrameEvery returns how many ticks share one computed frame: 2 on the
// mobile profile, 1 otherwise.
func (c *Config) FrameEvery() int {
	if c.Mobile {
		return 2
	}
	return 1
}

// Halos reports whether particles get glow discs. The mobile profile
// draws bodies only.
func (c *Config) Halos() bool { return !c.Mobile }

// CanvasWidth returns the canvas width, at least 1.
func (c *Config) CanvasWidth() int { return max(c.Width, 1) }

// CanvasHeight returns the canvas height, at least 1.
func (c *Config) CanvasHeight() int { return max(c.Height, 1) }

// PanelWidth returns the HUD width, or 0 when the HUD is off.
func (c *Config) PanelWidth() int {
	if !c.HUD {
		return 0
	}
	return HUDWidth
}
