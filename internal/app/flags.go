package app

import (
	"flag"

	"langton/internal/ant"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Ant ant.Config

	Scale    int
	TPS      int
	SPS      int
	Limit    int
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults: a 96x128 grid
// with the ant in the middle facing up.
func NewConfig() *Config {
	return &Config{
		Ant:      ant.Config{Rows: 96, Cols: 128, Row: 48, Col: 64, Facing: '^'},
		Scale:    6,
		TPS:      60,
		SPS:      30,
		HUDWidth: 240,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Ant.Rows, "rows", c.Ant.Rows, "grid rows")
	fs.IntVar(&c.Ant.Cols, "cols", c.Ant.Cols, "grid columns")
	fs.IntVar(&c.Ant.Row, "row", c.Ant.Row, "initial ant row")
	fs.IntVar(&c.Ant.Col, "col", c.Ant.Col, "initial ant column")
	fs.Func("dir", "initial ant direction, one of ^ > v < (default \""+string(c.Ant.Facing)+"\")", func(v string) error {
		if len(v) != 1 {
			return errors.WithMessagef(ant.ErrInvalidDirectionSymbol, "%q", v)
		}
		if _, err := ant.ParseDirection(v[0]); err != nil {
			return err
		}
		c.Ant.Facing = v[0]
		return nil
	})
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "ant steps per second")
	fs.IntVar(&c.Limit, "limit", c.Limit, "pause after this many steps (0 runs until the ant leaves the grid)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels (0 hides it)")
}

// Validate checks the viewer settings and the ant configuration.
func (c *Config) Validate() error {
	if err := c.Ant.Validate(); err != nil {
		return err
	}
	if c.Scale <= 0 || c.TPS <= 0 || c.SPS <= 0 {
		return errors.WithMessagef(ant.ErrInvalidArgument,
			"scale, tps and sps must be positive, got %d, %d, %d", c.Scale, c.TPS, c.SPS)
	}
	if c.Limit < 0 || c.HUDWidth < 0 {
		return errors.WithMessagef(ant.ErrInvalidArgument, "limit and hud must not be negative")
	}
	return nil
}
