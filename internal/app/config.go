package app

import (
	"flag"
	"time"

	"github.com/pkg/errors"
)

// Config holds the command-line parameters for the application.
type Config struct {
	Width       int
	Height      int
	Resolution  int
	DeadChance  float64
	UpdateSpeed int
	Seed        int64
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() *Config {
	return &Config{
		Width:       500,
		Height:      500,
		Resolution:  10,
		DeadChance:  0.7,
		UpdateSpeed: 75,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.Resolution, "resolution", c.Resolution, "cell size in pixels")
	fs.Float64Var(&c.DeadChance, "prob0", c.DeadChance, "chance a cell starts dead")
	fs.IntVar(&c.UpdateSpeed, "updateSpeed", c.UpdateSpeed, "delay between generations in milliseconds")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "board seed, 0 seeds from the clock")
}

// Validate reports the first configuration error, naming the offending flag
// and value. It must pass before Rows or Cols are derived.
func (c *Config) Validate() error {
	if c.Width < 0 {
		return errors.Errorf("invalid -width %d: must be a non-negative integer", c.Width)
	}
	if c.Height < 0 {
		return errors.Errorf("invalid -height %d: must be a non-negative integer", c.Height)
	}
	if c.Resolution < 0 {
		return errors.Errorf("invalid -resolution %d: must be a non-negative integer", c.Resolution)
	}
	if c.UpdateSpeed < 0 {
		return errors.Errorf("invalid -updateSpeed %d: must be a non-negative integer", c.UpdateSpeed)
	}
	if c.DeadChance < 0 || c.DeadChance > 1 {
		return errors.Errorf("invalid -prob0 %v: must be a probability in [0,1]", c.DeadChance)
	}
	if c.Resolution == 0 {
		return errors.Errorf("invalid -resolution 0: cells need a positive pixel size")
	}
	if c.Rows() == 0 || c.Cols() == 0 {
		return errors.Errorf("degenerate %dx%d cell grid: -resolution %d does not fit a %dx%d window",
			c.Cols(), c.Rows(), c.Resolution, c.Width, c.Height)
	}
	return nil
}

// Rows returns the cell row count derived from the window height.
func (c *Config) Rows() int { return c.Height / c.Resolution }

// Cols returns the cell column count derived from the window width.
func (c *Config) Cols() int { return c.Width / c.Resolution }

// Delay returns the per-generation delay.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.UpdateSpeed) * time.Millisecond
}
