package input

// Key identifies a keyboard key independent of the terminal backend
type Key string

const (
	KeyW    Key = "w"
	KeyS    Key = "s"
	KeyUp   Key = "up"
	KeyDown Key = "down"
)

// State answers whether a key is held during the current tick
type State interface {
	Pressed(k Key) bool
}

// Snapshot is a set of keys held during one tick
type Snapshot map[Key]bool

// NewSnapshot returns a snapshot with the given keys held
func NewSnapshot(keys ...Key) Snapshot {
	s := make(Snapshot, len(keys))
	for _, k := range keys {
		s[k] = true
	}
	return s
}

// Pressed reports whether k is held. Unknown keys are never pressed.
func (s Snapshot) Pressed(k Key) bool {
	return s[k]
}

// Bindings is one player's control scheme
type Bindings struct {
	Up   Key
	Down Key
}

// Default control schemes: W/S for the left player, arrows for the right
var (
	LeftBindings  = Bindings{Up: KeyW, Down: KeyS}
	RightBindings = Bindings{Up: KeyUp, Down: KeyDown}
)
