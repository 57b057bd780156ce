package game

import "github.com/diegok/pong2d/internal/input"

const (
	BaseSize           = 25.0
	PaddleWidth        = BaseSize
	PaddleHeight       = BaseSize * 5
	PaddleDefaultSpeed = 50.0 // Units per second
)

// Side is which edge of the field a paddle guards
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

type Paddle struct {
	Side     Side
	Speed    float64
	Position Vec2
	Velocity Vec2
	Width    float64
	Height   float64
}

func NewPaddle(side Side, speed float64) *Paddle {
	return &Paddle{
		Side:   side,
		Speed:  speed,
		Width:  PaddleWidth,
		Height: PaddleHeight,
	}
}

// ID names the paddle's physics body
func (p *Paddle) ID() string {
	return p.Side.String() + "-paddle"
}

// PaddleVelocity maps the key state to a vertical velocity for one paddle.
// Up is checked before down, so holding both moves the paddle up.
func PaddleVelocity(keys input.State, speed float64, b input.Bindings) float64 {
	if keys == nil {
		return 0
	}
	if b.Up != "" && keys.Pressed(b.Up) {
		return speed
	}
	if b.Down != "" && keys.Pressed(b.Down) {
		return -speed
	}
	return 0
}

// ApplyInput overwrites the paddle velocity from the key state
func (p *Paddle) ApplyInput(keys input.State, b input.Bindings) {
	p.Velocity = Vec2{X: 0, Y: PaddleVelocity(keys, p.Speed, b)}
}

func (p *Paddle) TopY() float64 {
	return p.Position.Y + p.Height/2
}

func (p *Paddle) BottomY() float64 {
	return p.Position.Y - p.Height/2
}
