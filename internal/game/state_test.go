package game

import (
	"errors"
	"math"
	"testing"

	"github.com/diegok/pong2d/internal/input"
)

func TestSpawn_DefaultLayout(t *testing.T) {
	w, err := Spawn(DefaultLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Left.Position.X != -487.5 {
		t.Errorf("expected left paddle x=-487.5, got %f", w.Left.Position.X)
	}
	if w.Right.Position.X != 487.5 {
		t.Errorf("expected right paddle x=487.5, got %f", w.Right.Position.X)
	}
	if w.Left.Position.Y != 0 || w.Right.Position.Y != 0 {
		t.Errorf("expected paddles vertically centred, got %f and %f", w.Left.Position.Y, w.Right.Position.Y)
	}
	if w.Left.Side != SideLeft || w.Right.Side != SideRight {
		t.Error("expected paddles on their own sides")
	}
	if w.Ball.Position != (Vec2{}) {
		t.Errorf("expected ball at centre, got %v", w.Ball.Position)
	}
	if w.Ball.Velocity != (Vec2{X: BallInitialVX}) {
		t.Errorf("expected ball velocity (%f, 0), got %v", BallInitialVX, w.Ball.Velocity)
	}
	if w.Tick != 0 {
		t.Errorf("expected tick 0, got %d", w.Tick)
	}
}

func TestSpawn_PaddlePositions(t *testing.T) {
	tests := []struct {
		name        string
		fieldWidth  float64
		paddleWidth float64
		want        float64
	}{
		{"reference", 1000, 25, 487.5},
		{"narrow field", 80, 2, 39},
		{"wide paddle", 200, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			l.FieldWidth = tt.fieldWidth
			l.PaddleWidth = tt.paddleWidth

			w, err := Spawn(l)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w.Left.Position.X != -tt.want {
				t.Errorf("expected left x=%f, got %f", -tt.want, w.Left.Position.X)
			}
			if w.Right.Position.X != tt.want {
				t.Errorf("expected right x=%f, got %f", tt.want, w.Right.Position.X)
			}
		})
	}
}

func TestSpawn_InvalidLayout(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Layout)
	}{
		{"zero field width", func(l *Layout) { l.FieldWidth = 0 }},
		{"negative field height", func(l *Layout) { l.FieldHeight = -1 }},
		{"zero paddle height", func(l *Layout) { l.PaddleHeight = 0 }},
		{"paddles wider than field", func(l *Layout) { l.PaddleWidth = 600 }},
		{"zero ball size", func(l *Layout) { l.BallSize = 0 }},
		{"negative paddle speed", func(l *Layout) { l.PaddleSpeed = -1 }},
		{"NaN field width", func(l *Layout) { l.FieldWidth = math.NaN() }},
		{"infinite field height", func(l *Layout) { l.FieldHeight = math.Inf(1) }},
		{"NaN paddle speed", func(l *Layout) { l.PaddleSpeed = math.NaN() }},
		{"infinite ball speed", func(l *Layout) { l.BallSpeed = math.Inf(1) }},
		{"NaN initial velocity", func(l *Layout) { l.InitialVelocity = Vec2{X: math.NaN()} }},
		{"infinite initial velocity", func(l *Layout) { l.InitialVelocity = Vec2{Y: math.Inf(-1)} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.modify(&l)

			_, err := Spawn(l)
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("expected ErrInvalidLayout, got %v", err)
			}
		})
	}
}

func TestWorld_ApplyInput_BothPlayers(t *testing.T) {
	w, err := Spawn(DefaultLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w.ApplyInput(input.NewSnapshot(input.KeyW, input.KeyDown), DefaultControls())

	if w.Left.Velocity.Y != PaddleDefaultSpeed {
		t.Errorf("expected left velocity.y=%f, got %f", PaddleDefaultSpeed, w.Left.Velocity.Y)
	}
	if w.Right.Velocity.Y != -PaddleDefaultSpeed {
		t.Errorf("expected right velocity.y=%f, got %f", -PaddleDefaultSpeed, w.Right.Velocity.Y)
	}
}

func TestWorld_ApplyInput_UpWinsTie(t *testing.T) {
	w, _ := Spawn(DefaultLayout())
	keys := input.NewSnapshot(input.KeyW, input.KeyS, input.KeyUp, input.KeyDown)

	w.ApplyInput(keys, DefaultControls())

	for _, p := range w.Paddles() {
		if p.Velocity.Y != p.Speed {
			t.Errorf("%s paddle: expected up to win tie with %f, got %f", p.Side, p.Speed, p.Velocity.Y)
		}
	}
}

func TestWorld_ClampBall(t *testing.T) {
	w, _ := Spawn(DefaultLayout())
	w.Ball.Velocity = Vec2{X: -1000, Y: 33}

	w.ClampBall(MaxBallVelocity)

	if w.Ball.Velocity != (Vec2{X: -400, Y: 33}) {
		t.Errorf("expected (-400, 33), got %v", w.Ball.Velocity)
	}
}

func TestWorld_Bodies(t *testing.T) {
	w, _ := Spawn(DefaultLayout())
	bodies := w.Bodies()

	if len(bodies) != 3 {
		t.Fatalf("expected 3 bodies, got %d", len(bodies))
	}

	byID := make(map[string]Body)
	for _, b := range bodies {
		byID[b.ID] = b
	}

	for _, id := range []string{"left-paddle", "right-paddle"} {
		b, ok := byID[id]
		if !ok {
			t.Fatalf("missing body %s", id)
		}
		if b.Kind != Kinematic {
			t.Errorf("%s: expected kinematic body", id)
		}
		if b.Collider != (Vec2{X: PaddleWidth / 2, Y: PaddleHeight / 2}) {
			t.Errorf("%s: unexpected collider %v", id, b.Collider)
		}
	}

	ball := byID[BallID]
	if ball.Kind != Dynamic {
		t.Error("expected ball to be dynamic")
	}
	if !ball.LockRotation {
		t.Error("expected ball rotation to be locked")
	}
	if ball.Restitution != (Restitution{Coefficient: BallRestitution, Combine: CombineMax}) {
		t.Errorf("unexpected ball restitution %v", ball.Restitution)
	}
}

func TestControls_For(t *testing.T) {
	c := DefaultControls()

	if c.For(SideLeft) != input.LeftBindings {
		t.Error("expected left bindings for left side")
	}
	if c.For(SideRight) != input.RightBindings {
		t.Error("expected right bindings for right side")
	}
}

func TestSide_String(t *testing.T) {
	if SideLeft.String() != "left" || SideRight.String() != "right" {
		t.Errorf("unexpected side names %s/%s", SideLeft, SideRight)
	}
	if Side(7).String() != "unknown" {
		t.Errorf("expected unknown, got %s", Side(7))
	}
}
