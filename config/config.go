// Package config holds the startup settings of the game. Values are read once
// from flags and never change while the game runs.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/AkhtemKurtiev/feed-the-python/game/manager"
	"github.com/AkhtemKurtiev/feed-the-python/game/types"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Frontends understood by the launcher.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendWeb      = "web"
)

const (
	DefaultCellSize       = 20
	DefaultWindowWidth    = 640
	DefaultWindowHeight   = 480
	DefaultTicksPerSecond = 5
	DefaultAddr           = ":8080"
	DefaultLogFile        = "feed-the-python.log"
	DefaultLogLevel       = "info"
)

type Config struct {
	CellSize       int
	WindowWidth    int
	WindowHeight   int
	TicksPerSecond int
	FoodPolicy     string
	Frontend       string
	Addr           string
	Seed           uint64
	LogFile        string
	LogLevel       string
}

// Default returns the settings of the classic 32x24 board at 5 ticks per second.
func Default() Config {
	return Config{
		CellSize:       DefaultCellSize,
		WindowWidth:    DefaultWindowWidth,
		WindowHeight:   DefaultWindowHeight,
		TicksPerSecond: DefaultTicksPerSecond,
		FoodPolicy:     manager.AllowOverlap.String(),
		Frontend:       FrontendWindow,
		Addr:           DefaultAddr,
		LogFile:        DefaultLogFile,
		LogLevel:       DefaultLogLevel,
	}
}

// Bind registers one flag per field on fs, using the current values as defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "window width in pixels")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "window height in pixels")
	fs.IntVar(&c.TicksPerSecond, "tps", c.TicksPerSecond, "game ticks per second")
	fs.StringVar(&c.FoodPolicy, "food", c.FoodPolicy, "food placement: allow (may land on the snake) or strict")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "frontend: window, terminal or web")
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address of the web frontend")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one from the clock")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "log file path")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// Validate checks that every setting can be used to start a game.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	if c.WindowWidth < c.CellSize || c.WindowHeight < c.CellSize {
		return fmt.Errorf("%w: window %dx%d smaller than one %dpx cell",
			ErrInvalidConfig, c.WindowWidth, c.WindowHeight, c.CellSize)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: ticks per second %d", ErrInvalidConfig, c.TicksPerSecond)
	}
	if _, err := manager.ParseFoodPolicy(c.FoodPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal, FrontendWeb:
	default:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalidConfig, c.Frontend)
	}
	return nil
}

// Grid derives the board from the window size by integer division.
func (c Config) Grid() (types.Grid, error) {
	return types.NewGrid(c.WindowWidth/c.CellSize, c.WindowHeight/c.CellSize)
}

// Policy returns the parsed food placement policy.
func (c Config) Policy() manager.FoodPolicy {
	p, _ := manager.ParseFoodPolicy(c.FoodPolicy)
	return p
}

// TickInterval is the pause between two ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}
