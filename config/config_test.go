package config

import (
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/AkhtemKurtiev/feed-the-python/game/manager"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	g, err := c.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if g.Width != 32 || g.Height != 24 {
		t.Errorf("grid = %dx%d, want 32x24", g.Width, g.Height)
	}
	if c.TickInterval() != 200*time.Millisecond {
		t.Errorf("tick interval = %v", c.TickInterval())
	}
	if c.Policy() != manager.AllowOverlap {
		t.Errorf("policy = %v", c.Policy())
	}
}

func TestBind(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	args := []string{"-cell", "10", "-tps", "8", "-food", "strict", "-frontend", "terminal", "-seed", "99"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if c.CellSize != 10 || c.TicksPerSecond != 8 || c.Seed != 99 || c.Frontend != FrontendTerminal {
		t.Errorf("flags not bound: %+v", c)
	}
	if c.Policy() != manager.NoOverlap {
		t.Errorf("policy = %v", c.Policy())
	}
	g, _ := c.Grid()
	if g.Width != 64 || g.Height != 48 {
		t.Errorf("grid = %dx%d", g.Width, g.Height)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cell", func(c *Config) { c.CellSize = 0 }},
		{"tiny window", func(c *Config) { c.WindowWidth = 5 }},
		{"zero tps", func(c *Config) { c.TicksPerSecond = 0 }},
		{"bad policy", func(c *Config) { c.FoodPolicy = "maybe" }},
		{"bad frontend", func(c *Config) { c.Frontend = "vr" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
