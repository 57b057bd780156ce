package game

// BodyKind tells the physics adapter how a body moves
type BodyKind int

const (
	Static    BodyKind = iota // Never moves
	Kinematic                 // Moved by its velocity, ignores collisions
	Dynamic                   // Moved by its velocity, resolved by collisions
)

// Combine selects how two restitution coefficients mix in a contact
type Combine int

const (
	CombineAverage Combine = iota
	CombineMin
	CombineMultiply
	CombineMax
)

// Restitution is a bounciness coefficient with its combine rule
type Restitution struct {
	Coefficient float64
	Combine     Combine
}

// DefaultRestitution is used for bodies that don't specify one
var DefaultRestitution = Restitution{Coefficient: 0, Combine: CombineAverage}

// Body describes a world entity to the physics adapter.
// Collider is the half extents of an axis-aligned box.
type Body struct {
	ID           string
	Kind         BodyKind
	Collider     Vec2
	Restitution  Restitution
	LockRotation bool
}

// Bodies returns the physics description of every entity in the world
func (w *World) Bodies() []Body {
	bodies := make([]Body, 0, 3)
	for _, p := range w.Paddles() {
		bodies = append(bodies, Body{
			ID:          p.ID(),
			Kind:        Kinematic,
			Collider:    Vec2{X: p.Width / 2, Y: p.Height / 2},
			Restitution: DefaultRestitution,
		})
	}
	bodies = append(bodies, Body{
		ID:           w.Ball.ID(),
		Kind:         Dynamic,
		Collider:     Vec2{X: w.Ball.Size / 2, Y: w.Ball.Size / 2},
		Restitution:  Restitution{Coefficient: BallRestitution, Combine: CombineMax},
		LockRotation: true,
	})
	return bodies
}

// Contact is a collision reported by a physics step
type Contact struct {
	A, B   string
	Normal Vec2 // Points from A towards B
}

// Involves reports whether the contact touches the body with the given ID
func (c Contact) Involves(id string) bool {
	return c.A == id || c.B == id
}

// Physics advances positions and resolves collisions for one step
type Physics interface {
	Step(w *World, dt float64) []Contact
}
