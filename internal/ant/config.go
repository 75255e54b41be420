package ant

import (
	"strconv"

	"github.com/pkg/errors"
)

// Config holds the parameters of a single run.
type Config struct {
	Rows   int
	Cols   int
	Row    int
	Col    int
	Facing byte
	Steps  int
}

// DefaultConfig returns the standard configuration: a 3x4 grid with the ant
// at (1, 1) facing left, walking 7 steps.
func DefaultConfig() Config {
	return Config{Rows: 3, Cols: 4, Row: 1, Col: 1, Facing: '<', Steps: 7}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["row"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Row = parsed
		}
	}
	if v, ok := cfg["col"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Col = parsed
		}
	}
	if v, ok := cfg["dir"]; ok && len(v) == 1 {
		c.Facing = v[0]
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Steps = parsed
		}
	}
	return c
}

// Validate checks the preconditions of a run. The direction glyph is checked
// first so a bad glyph is always reported as ErrInvalidDirectionSymbol.
func (c Config) Validate() error {
	if _, err := ParseDirection(c.Facing); err != nil {
		return err
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.WithMessagef(ErrInvalidArgument, "grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.Row < 0 || c.Row >= c.Rows || c.Col < 0 || c.Col >= c.Cols {
		return errors.WithMessagef(ErrInvalidArgument,
			"ant position (%d, %d) outside %dx%d grid", c.Row, c.Col, c.Rows, c.Cols)
	}
	if c.Steps < 0 {
		return errors.WithMessagef(ErrInvalidArgument, "steps must be >= 0, got %d", c.Steps)
	}
	return nil
}
