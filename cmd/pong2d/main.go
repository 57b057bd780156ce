package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/diegok/pong2d/internal/app"
	"github.com/diegok/pong2d/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if cfg.ProfileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.ProfileDir), profile.Quiet).Stop()
	}

	return app.NewApp(cfg).Run()
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pong2d [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --config <file>         TOML or YAML config file")
	fmt.Fprintln(os.Stderr, "  --width <n>             Field width (default: 1000)")
	fmt.Fprintln(os.Stderr, "  --height <n>            Field height (default: 720)")
	fmt.Fprintln(os.Stderr, "  --paddle-speed <n>      Paddle speed, units/second (default: 50)")
	fmt.Fprintln(os.Stderr, "  --ball-velocity <n>     Initial ball velocity (default: 1000)")
	fmt.Fprintln(os.Stderr, "  --max-velocity <n>      Ball speed limit (default: 400)")
	fmt.Fprintln(os.Stderr, "  --tick-rate <n>         Ticks per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --no-sound              Disable sound")
	fmt.Fprintln(os.Stderr, "  --no-walls              No top and bottom walls")
	fmt.Fprintln(os.Stderr, "  --log <file>            Write logs to file")
	fmt.Fprintln(os.Stderr, "  --cpuprofile <dir>      Write a CPU profile")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  Left paddle: W / S    Right paddle: Up / Down")
	fmt.Fprintln(os.Stderr, "  Space: pause    r: restart    q: quit")
}
