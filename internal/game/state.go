package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/diegok/pong2d/internal/input"
)

// Reference field size
const (
	FieldWidth  = 1000.0
	FieldHeight = 720.0
)

var ErrInvalidLayout = errors.New("invalid layout")

// Layout is the fixed geometry a match starts from
type Layout struct {
	FieldWidth      float64
	FieldHeight     float64
	PaddleWidth     float64
	PaddleHeight    float64
	PaddleSpeed     float64
	BallSize        float64
	BallSpeed       float64
	InitialVelocity Vec2
}

// DefaultLayout returns the reference geometry
func DefaultLayout() Layout {
	return Layout{
		FieldWidth:      FieldWidth,
		FieldHeight:     FieldHeight,
		PaddleWidth:     PaddleWidth,
		PaddleHeight:    PaddleHeight,
		PaddleSpeed:     PaddleDefaultSpeed,
		BallSize:        BallSize,
		BallSpeed:       BallDefaultSpeed,
		InitialVelocity: Vec2{X: BallInitialVX},
	}
}

// Validate checks that every value is finite, sizes are positive and
// speeds non-negative
func (l Layout) Validate() error {
	values := []float64{l.FieldWidth, l.FieldHeight, l.PaddleWidth, l.PaddleHeight,
		l.PaddleSpeed, l.BallSize, l.BallSpeed, l.InitialVelocity.X, l.InitialVelocity.Y}
	for _, v := range values {
		if !isFinite(v) {
			return fmt.Errorf("%w: values must be finite, got %g", ErrInvalidLayout, v)
		}
	}

	switch {
	case l.FieldWidth <= 0 || l.FieldHeight <= 0:
		return fmt.Errorf("%w: field must be positive, got %gx%g", ErrInvalidLayout, l.FieldWidth, l.FieldHeight)
	case l.PaddleWidth <= 0 || l.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle must be positive, got %gx%g", ErrInvalidLayout, l.PaddleWidth, l.PaddleHeight)
	case l.PaddleWidth*2 > l.FieldWidth:
		return fmt.Errorf("%w: paddles wider than field", ErrInvalidLayout)
	case l.BallSize <= 0:
		return fmt.Errorf("%w: ball size must be positive, got %g", ErrInvalidLayout, l.BallSize)
	case l.PaddleSpeed < 0 || l.BallSpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidLayout)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PaddleCenterX returns the horizontal centre of the paddle on the given side
func (l Layout) PaddleCenterX(side Side) float64 {
	x := l.FieldWidth/2 - l.PaddleWidth/2
	if side == SideLeft {
		return -x
	}
	return x
}

// Controls holds both players' key bindings
type Controls struct {
	Left  input.Bindings
	Right input.Bindings
}

// DefaultControls returns W/S for the left paddle and arrows for the right
func DefaultControls() Controls {
	return Controls{Left: input.LeftBindings, Right: input.RightBindings}
}

// For returns the bindings for a side
func (c Controls) For(side Side) input.Bindings {
	if side == SideRight {
		return c.Right
	}
	return c.Left
}

// World holds the two paddles and the ball for a match
type World struct {
	Width  float64
	Height float64
	Left   *Paddle
	Right  *Paddle
	Ball   *Ball
	Tick   int
}

// Spawn builds a world from the layout: paddles at the side edges,
// ball at the centre with the initial velocity.
func Spawn(l Layout) (*World, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		Width:  l.FieldWidth,
		Height: l.FieldHeight,
		Left:   spawnPaddle(l, SideLeft),
		Right:  spawnPaddle(l, SideRight),
		Ball:   NewBall(Vec2{}, l.InitialVelocity),
	}
	w.Ball.Size = l.BallSize
	w.Ball.Speed = l.BallSpeed

	return w, nil
}

func spawnPaddle(l Layout, side Side) *Paddle {
	p := NewPaddle(side, l.PaddleSpeed)
	p.Width = l.PaddleWidth
	p.Height = l.PaddleHeight
	p.Position = Vec2{X: l.PaddleCenterX(side)}
	return p
}

// Paddles returns both paddles, left first
func (w *World) Paddles() []*Paddle {
	return []*Paddle{w.Left, w.Right}
}

// ApplyInput sets every paddle's velocity from the key state
func (w *World) ApplyInput(keys input.State, c Controls) {
	for _, p := range w.Paddles() {
		p.ApplyInput(keys, c.For(p.Side))
	}
}

// ClampBall limits the ball's horizontal velocity
func (w *World) ClampBall(max float64) {
	w.Ball.Clamp(max)
}
