package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong2d/internal/game"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
	WallChar   = '\u2500' // ─
)

var (
	CourtStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	StatusStyle = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
)

// Viewport maps field coordinates (origin at the centre, y up) onto the
// terminal rows between the header and the status bar.
type Viewport struct {
	FieldWidth  float64
	FieldHeight float64
	Cols        int
	Rows        int
	Top         int // First terminal row of the field
}

// ToCell returns the terminal cell for a field position and whether it is on screen
func (v Viewport) ToCell(p game.Vec2) (int, int, bool) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0, false
	}
	fx := (p.X + v.FieldWidth/2) / v.FieldWidth
	fy := (v.FieldHeight/2 - p.Y) / v.FieldHeight
	if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
		return 0, 0, false
	}

	x := int(fx * float64(v.Cols))
	y := int(fy * float64(v.Rows))
	// The far edges land one past the last cell
	if x == v.Cols {
		x--
	}
	if y == v.Rows {
		y--
	}
	return x, v.Top + y, true
}

// Status is the extra information shown around the field
type Status struct {
	Paused bool
}

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Viewport returns the mapping for the current screen size
func (r *Renderer) Viewport(w *game.World) Viewport {
	screenW, screenH := r.screen.Size()
	return Viewport{
		FieldWidth:  w.Width,
		FieldHeight: w.Height,
		Cols:        screenW,
		Rows:        screenH - 2, // Header and status bar
		Top:         1,
	}
}

// RenderWorld draws the field, paddles, ball and status bar
func (r *Renderer) RenderWorld(w *game.World, status Status) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	vp := r.Viewport(w)

	// Court background between header and status bar
	r.screen.FillRect(0, vp.Top, screenW, vp.Rows, CourtStyle, ' ')

	// Top wall doubles as the header row
	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.screen.DrawHorizontalLine(0, screenW-1, 0, wallStyle, WallChar)
	title := " PONG "
	r.screen.DrawText((screenW-len(title))/2, 0, title, tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite))

	// Centre dashed line
	lineStyle := CourtStyle.Foreground(tcell.ColorDarkGray)
	for y := vp.Top; y < vp.Top+vp.Rows; y += 2 {
		r.screen.SetCell(screenW/2, y, lineStyle, '|')
	}

	paddleStyle := CourtStyle.Foreground(tcell.ColorWhite)
	for _, p := range w.Paddles() {
		r.renderPaddle(vp, p, paddleStyle)
	}

	if x, y, ok := vp.ToCell(w.Ball.Position); ok {
		r.screen.SetCell(x, y, CourtStyle.Foreground(tcell.ColorWhite), BallChar)
	}

	if status.Paused {
		text := " PAUSED - press SPACE to resume "
		r.screen.DrawText((screenW-len(text))/2, vp.Top+vp.Rows/2, text, tcell.StyleDefault.Reverse(true))
	}

	// Status bar at bottom
	statusY := screenH - 1
	r.screen.FillRect(0, statusY, screenW, 1, StatusStyle, ' ')
	statusText := fmt.Sprintf(" Tick: %d | Ball: (%.0f, %.0f) | W/S vs Up/Down | r: restart  q: quit",
		w.Tick, w.Ball.Velocity.X, w.Ball.Velocity.Y)
	r.screen.DrawText(0, statusY, statusText, StatusStyle)

	r.screen.Show()
}

func (r *Renderer) renderPaddle(vp Viewport, p *game.Paddle, style tcell.Style) {
	half := vp.FieldHeight / 2
	if p.BottomY() > half || p.TopY() < -half {
		return
	}
	x, top, ok := vp.ToCell(game.Vec2{X: p.Position.X, Y: min(p.TopY(), half)})
	if !ok {
		return
	}
	_, bottom, _ := vp.ToCell(game.Vec2{X: p.Position.X, Y: max(p.BottomY(), -half)})
	r.screen.DrawVerticalLine(x, top, bottom, style, PaddleChar)
}

// RenderError displays an error message
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	text := "Error: " + err
	r.screen.DrawText((screenW-len(text))/2, screenH/2, text, errStyle)

	hint := "Press any key to exit"
	r.screen.DrawText((screenW-len(hint))/2, screenH/2+2, hint, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}
