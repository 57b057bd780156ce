package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/diegok/pong2d/internal/audio"
	"github.com/diegok/pong2d/internal/config"
	"github.com/diegok/pong2d/internal/game"
	"github.com/diegok/pong2d/internal/physics"
	"github.com/diegok/pong2d/internal/ui"
)

var ErrNotTerminal = errors.New("stdout is not a terminal")

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	log      *log.Logger
	logFile  *os.File
	screen   *ui.Screen
	renderer *ui.Renderer

	// State
	world    *game.World
	physics  game.Physics
	controls game.Controls
	keys     *ui.KeyTracker
	paused   bool

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	controls := game.DefaultControls()
	return &App{
		cfg:      cfg,
		log:      log.New(io.Discard, "", 0),
		controls: controls,
		keys:     ui.NewKeyTracker(ui.HoldTicks, controls.Left, controls.Right),
		quit:     make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It spawns the world, initializes the screen, sets up signal handling,
// and runs the game loop until the player quits.
func (a *App) Run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	if err := a.openLog(); err != nil {
		return err
	}
	defer a.closeLog()

	if err := a.reset(); err != nil {
		return err
	}
	a.log.Printf("field %gx%g, tick rate %d, max velocity %g", a.world.Width, a.world.Height, a.cfg.TickRate, a.cfg.MaxVelocity)

	// Game works without sound
	if a.cfg.Sound {
		if err := audio.Init(); err != nil {
			a.log.Printf("audio disabled: %v", err)
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	runErr := a.mainLoop()

	a.cleanup()
	a.log.Printf("stopped after %d ticks", a.world.Tick)

	return runErr
}

func (a *App) openLog() error {
	if a.cfg.LogFile == "" {
		return nil
	}
	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	a.logFile = f
	a.log = log.New(f, "pong2d ", log.LstdFlags|log.Lmicroseconds)
	return nil
}

func (a *App) closeLog() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// reset spawns a fresh world and physics for a new match
func (a *App) reset() error {
	w, err := game.Spawn(a.cfg.Layout())
	if err != nil {
		return fmt.Errorf("failed to spawn world: %w", err)
	}
	a.world = w
	a.physics = physics.New(w, physics.WithWalls(a.cfg.Walls))
	a.keys.Reset()
	return nil
}

// mainLoop is the main event loop that handles input, ticks and rendering.
func (a *App) mainLoop() error {
	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.TickRate))
	defer ticker.Stop()

	return a.runLoop(a.pollEvents(), ticker.C)
}

// pollEvents forwards screen events until the screen is finalized or the
// app quits. The channel is closed when polling stops.
func (a *App) pollEvents() <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()
	return events
}

func (a *App) runLoop(events <-chan tcell.Event, ticks <-chan time.Time) error {
	for {
		select {
		case <-a.quit:
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := a.handleEvent(ev)
			if err != nil {
				a.renderer.RenderError(err.Error())
				a.waitForKey(events)
				return err
			}
			if quit {
				return nil
			}

		case <-ticks:
			a.step()
			a.render()
		}
	}
}

// waitForKey blocks until the next key press arrives from the poller
func (a *App) waitForKey(events <-chan tcell.Event) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, isKey := ev.(*tcell.EventKey); isKey {
				return
			}
		case <-a.quit:
			return
		}
	}
}

// step runs one simulation tick unless paused
func (a *App) step() []game.Contact {
	if a.paused {
		return nil
	}

	contacts := game.SimulateTick(a.keys.Snapshot(), a.world, a.controls, a.physics, a.cfg.TickInterval(), a.cfg.MaxVelocity)
	a.keys.Advance()

	if len(contacts) > 0 {
		audio.PlayContacts(contacts)
	}
	return contacts
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ui.IsQuitKey(ev.Key(), ev.Rune()):
			return true, nil
		case ui.IsPauseKey(ev.Key(), ev.Rune()):
			a.paused = !a.paused
			a.keys.Reset()
		case ui.IsRestartKey(ev.Key(), ev.Rune()):
			a.log.Printf("restart at tick %d", a.world.Tick)
			if err := a.reset(); err != nil {
				return false, err
			}
		case !a.paused:
			a.keys.HandleEvent(ev)
		}

	case *tcell.EventResize:
		if a.screen != nil {
			a.screen.Clear()
			a.render()
		}
	}

	return false, nil
}

func (a *App) render() {
	if a.renderer == nil {
		return
	}
	a.renderer.RenderWorld(a.world, ui.Status{Paused: a.paused})
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
