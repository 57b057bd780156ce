package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/diegok/pong2d/internal/game"
)

// Default values for configuration
const (
	DefaultTickRate    = 60
	MinTickRate        = 30
	MaxTickRate        = 1000
	DefaultFieldWidth  = game.FieldWidth
	DefaultFieldHeight = game.FieldHeight
)

// StepLimit is the largest horizontal distance the ball may cover in one
// tick. Anything wider than ball plus paddle can jump past a paddle
// without ever overlapping it.
const StepLimit = game.BallSize + game.PaddleWidth

var ErrUnknownFormat = errors.New("unknown config file format")

// Config holds the application configuration
type Config struct {
	FieldWidth   float64 `toml:"field_width" yaml:"field_width"`
	FieldHeight  float64 `toml:"field_height" yaml:"field_height"`
	PaddleSpeed  float64 `toml:"paddle_speed" yaml:"paddle_speed"`
	BallVelocity float64 `toml:"ball_velocity" yaml:"ball_velocity"`
	MaxVelocity  float64 `toml:"max_velocity" yaml:"max_velocity"`
	TickRate     int     `toml:"tick_rate" yaml:"tick_rate"`
	Sound        bool    `toml:"sound" yaml:"sound"`
	Walls        bool    `toml:"walls" yaml:"walls"`
	LogFile      string  `toml:"log_file" yaml:"log_file"`
	ProfileDir   string  `toml:"-" yaml:"-"`
}

// Default returns the reference configuration
func Default() *Config {
	return &Config{
		FieldWidth:   DefaultFieldWidth,
		FieldHeight:  DefaultFieldHeight,
		PaddleSpeed:  game.PaddleDefaultSpeed,
		BallVelocity: game.BallInitialVX,
		MaxVelocity:  game.MaxBallVelocity,
		TickRate:     DefaultTickRate,
		Sound:        true,
		Walls:        true,
	}
}

// ParseArgs parses command line arguments and returns a Config.
// Values from --config are applied first; flags given explicitly win.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pong2d", flag.ContinueOnError)
	def := Default()

	file := fs.String("config", "", "config file (.toml, .yaml or .yml)")
	width := fs.Float64("width", def.FieldWidth, "field width in units")
	height := fs.Float64("height", def.FieldHeight, "field height in units")
	paddleSpeed := fs.Float64("paddle-speed", def.PaddleSpeed, "paddle speed in units/second")
	ballVelocity := fs.Float64("ball-velocity", def.BallVelocity, "initial horizontal ball velocity")
	maxVelocity := fs.Float64("max-velocity", def.MaxVelocity, "maximum horizontal ball speed")
	tickRate := fs.Int("tick-rate", def.TickRate, "simulation ticks per second")
	noSound := fs.Bool("no-sound", false, "disable sound effects")
	noWalls := fs.Bool("no-walls", false, "let the ball leave through the top and bottom")
	logFile := fs.String("log", "", "write logs to this file")
	profileDir := fs.String("cpuprofile", "", "write a CPU profile to this directory")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := def
	if *file != "" {
		loaded, err := LoadFile(*file)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.FieldWidth = *width
		case "height":
			cfg.FieldHeight = *height
		case "paddle-speed":
			cfg.PaddleSpeed = *paddleSpeed
		case "ball-velocity":
			cfg.BallVelocity = *ballVelocity
		case "max-velocity":
			cfg.MaxVelocity = *maxVelocity
		case "tick-rate":
			cfg.TickRate = *tickRate
		case "no-sound":
			cfg.Sound = !*noSound
		case "no-walls":
			cfg.Walls = !*noWalls
		case "log":
			cfg.LogFile = *logFile
		case "cpuprofile":
			cfg.ProfileDir = *profileDir
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads a TOML or YAML file over the defaults.
// The format is chosen by extension.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(b), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"width", c.FieldWidth},
		{"height", c.FieldHeight},
		{"paddle speed", c.PaddleSpeed},
		{"ball velocity", c.BallVelocity},
		{"max velocity", c.MaxVelocity},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be a finite number, got %g", f.name, f.value)
		}
	}

	if c.FieldWidth <= 0 || c.FieldHeight <= 0 {
		return fmt.Errorf("field must be positive, got %gx%g", c.FieldWidth, c.FieldHeight)
	}
	if c.PaddleSpeed < 0 {
		return fmt.Errorf("paddle speed must not be negative, got %g", c.PaddleSpeed)
	}
	if c.MaxVelocity <= 0 {
		return fmt.Errorf("max velocity must be positive, got %g", c.MaxVelocity)
	}
	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		return fmt.Errorf("tick rate must be between %d and %d, got %d", MinTickRate, MaxTickRate, c.TickRate)
	}
	if step := c.MaxStep(); step >= StepLimit {
		return fmt.Errorf("ball would move %g units per tick, must stay below %g: raise --tick-rate or lower the velocities", step, StepLimit)
	}
	return nil
}

// MaxStep is the widest horizontal move the ball can make in one tick.
// The first tick runs before the clamp, so the initial velocity counts too.
func (c *Config) MaxStep() float64 {
	return math.Max(c.MaxVelocity, math.Abs(c.BallVelocity)) * c.TickInterval()
}

// Layout builds the match geometry from the configuration
func (c *Config) Layout() game.Layout {
	l := game.DefaultLayout()
	l.FieldWidth = c.FieldWidth
	l.FieldHeight = c.FieldHeight
	l.PaddleSpeed = c.PaddleSpeed
	l.InitialVelocity = game.Vec2{X: c.BallVelocity}
	return l
}

// TickInterval is the fixed simulation step in seconds
func (c *Config) TickInterval() float64 {
	return 1 / float64(c.TickRate)
}
