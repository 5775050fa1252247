package app

import (
	"flag"
	"time"

	"lifepad/pkg/life"
)

// Config represents the command-line parameters for the hosts.
type Config struct {
	Rows     int
	Cols     int
	Cell     int
	Interval time.Duration
	Seed     int64
	TPS      int
	Random   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{Rows: d.Rows, Cols: d.Cols, Cell: 8, Interval: d.Interval, Seed: d.Seed, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the host loop")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random grid")
}

// Life returns the engine configuration.
func (c *Config) Life() life.Config {
	return life.Config{Rows: c.Rows, Cols: c.Cols, Interval: c.Interval, Seed: c.Seed}
}

// NewController builds the engine described by the configuration.
func (c *Config) NewController() (*life.Controller, error) {
	ctrl, err := life.NewController(c.Life())
	if err != nil {
		return nil, err
	}
	if c.Random {
		ctrl.Randomize()
	}
	return ctrl, nil
}
