package game

import "math"

const (
	BallSize         = BaseSize
	BallDefaultSpeed = 50.0
	BallInitialVX    = 1000.0
	MaxBallVelocity  = 400.0
	BallRestitution  = 3.0 // Ball speeds up on every paddle hit

	BallID = "ball"
)

// Vec2 is a 2D vector in field units, origin at the field centre, y up
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

type Ball struct {
	Speed    float64 // Nominal speed, informational only
	Position Vec2
	Velocity Vec2
	Size     float64
}

func NewBall(position, velocity Vec2) *Ball {
	return &Ball{
		Speed:    BallDefaultSpeed,
		Position: position,
		Velocity: velocity,
		Size:     BallSize,
	}
}

// ID names the ball's physics body
func (b *Ball) ID() string {
	return BallID
}

// ClampVelocity limits the horizontal component to [-max, max].
// The vertical component is returned as is.
func ClampVelocity(v Vec2, max float64) Vec2 {
	if v.X > max {
		v.X = max
	} else if v.X < -max {
		v.X = -max
	}
	return v
}

// Clamp applies ClampVelocity to the ball in place
func (b *Ball) Clamp(max float64) {
	b.Velocity = ClampVelocity(b.Velocity, max)
}
