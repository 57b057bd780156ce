// Package physics is a small axis-aligned rigid body stepper that plays the
// role of the physics plugin for the terminal host. It integrates kinematic
// and dynamic bodies, resolves dynamic-vs-kinematic box contacts with
// restitution and reflects dynamic bodies off the top and bottom field edges.
package physics

import (
	"math"

	"github.com/diegok/pong2d/internal/game"
)

// Wall body IDs reported in contacts
const (
	TopWall    = "top-wall"
	BottomWall = "bottom-wall"
)

type body struct {
	game.Body
	angularVelocity float64
}

// entity points at the position and velocity the world stores for a body
type entity struct {
	pos *game.Vec2
	vel *game.Vec2
}

// World tracks the bodies registered from a game world
type World struct {
	bodies map[string]*body
	order  []string
	walls  bool
}

type Option func(*World)

// WithWalls toggles the top and bottom field edges
func WithWalls(enabled bool) Option {
	return func(pw *World) {
		pw.walls = enabled
	}
}

// New registers every body the game world describes
func New(w *game.World, opts ...Option) *World {
	pw := &World{
		bodies: make(map[string]*body),
		walls:  true,
	}
	for _, opt := range opts {
		opt(pw)
	}
	for _, b := range w.Bodies() {
		pw.bodies[b.ID] = &body{Body: b}
		pw.order = append(pw.order, b.ID)
	}
	return pw
}

// AngularVelocity returns the spin a body picked up from contacts
func (pw *World) AngularVelocity(id string) float64 {
	if b, ok := pw.bodies[id]; ok {
		return b.angularVelocity
	}
	return 0
}

func entities(w *game.World) map[string]entity {
	m := make(map[string]entity, 3)
	for _, p := range w.Paddles() {
		m[p.ID()] = entity{pos: &p.Position, vel: &p.Velocity}
	}
	m[w.Ball.ID()] = entity{pos: &w.Ball.Position, vel: &w.Ball.Velocity}
	return m
}

// Step integrates positions over dt and resolves contacts.
// Velocities are read from and written back to the game world.
func (pw *World) Step(w *game.World, dt float64) []game.Contact {
	ents := entities(w)

	for _, id := range pw.order {
		b := pw.bodies[id]
		e, ok := ents[id]
		if !ok || b.Kind == game.Static {
			continue
		}
		*e.pos = e.pos.Add(e.vel.Scale(dt))
		if b.Kind == game.Kinematic && pw.walls {
			pw.keepInField(w, b, e)
		}
	}

	var contacts []game.Contact
	for _, id := range pw.order {
		b := pw.bodies[id]
		e, ok := ents[id]
		if !ok || b.Kind != game.Dynamic {
			continue
		}
		for _, otherID := range pw.order {
			other := pw.bodies[otherID]
			oe, ok := ents[otherID]
			if !ok || otherID == id || other.Kind == game.Dynamic {
				continue
			}
			if c, hit := pw.collide(b, e, other, oe); hit {
				contacts = append(contacts, c)
			}
		}
		if pw.walls {
			contacts = append(contacts, pw.bounceWalls(w, b, e)...)
		}
	}

	return contacts
}

// keepInField stops a kinematic body at the top and bottom edges
func (pw *World) keepInField(w *game.World, b *body, e entity) {
	maxY := w.Height/2 - b.Collider.Y
	if maxY < 0 {
		maxY = 0
	}
	if e.pos.Y > maxY {
		e.pos.Y = maxY
	}
	if e.pos.Y < -maxY {
		e.pos.Y = -maxY
	}
}

// collide resolves a dynamic body against an immovable one.
// The contact normal points from the other body towards the dynamic one.
func (pw *World) collide(b *body, e entity, other *body, oe entity) (game.Contact, bool) {
	d := e.pos.Sub(*oe.pos)
	overlapX := b.Collider.X + other.Collider.X - math.Abs(d.X)
	overlapY := b.Collider.Y + other.Collider.Y - math.Abs(d.Y)
	if overlapX <= 0 || overlapY <= 0 {
		return game.Contact{}, false
	}

	var normal game.Vec2
	var depth float64
	if overlapX < overlapY {
		normal = game.Vec2{X: sign(d.X)}
		depth = overlapX
	} else {
		normal = game.Vec2{Y: sign(d.Y)}
		depth = overlapY
	}
	*e.pos = e.pos.Add(normal.Scale(depth))

	rel := e.vel.Sub(*oe.vel)
	vn := rel.Dot(normal)
	if vn < 0 {
		restitution := CombineRestitution(b.Restitution, other.Restitution)
		*e.vel = e.vel.Sub(normal.Scale((1 + restitution) * vn))

		if !b.LockRotation {
			tangent := game.Vec2{X: -normal.Y, Y: normal.X}
			radius := math.Max(b.Collider.X, b.Collider.Y)
			b.angularVelocity += rel.Dot(tangent) / radius
		}
	}

	return game.Contact{A: other.ID, B: b.ID, Normal: normal}, true
}

// bounceWalls reflects the vertical velocity off the field edges
func (pw *World) bounceWalls(w *game.World, b *body, e entity) []game.Contact {
	limit := w.Height/2 - b.Collider.Y

	switch {
	case e.pos.Y > limit:
		e.pos.Y = limit
		if e.vel.Y > 0 {
			e.vel.Y = -e.vel.Y
		}
		return []game.Contact{{A: TopWall, B: b.ID, Normal: game.Vec2{Y: -1}}}
	case e.pos.Y < -limit:
		e.pos.Y = -limit
		if e.vel.Y < 0 {
			e.vel.Y = -e.vel.Y
		}
		return []game.Contact{{A: BottomWall, B: b.ID, Normal: game.Vec2{Y: 1}}}
	}
	return nil
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
