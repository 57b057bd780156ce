package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong2d/internal/input"
)

// HoldTicks is how long a key counts as held after its last press event
// (~133ms at 60Hz). Terminals report presses and repeats but no releases.
const HoldTicks = 8

// KeyFromEvent converts a tcell key to an input key.
// Returns false for keys the game doesn't use.
func KeyFromEvent(key tcell.Key, r rune) (input.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'w':
			return input.KeyW, true
		case 's':
			return input.KeyS, true
		}
	}
	return "", false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsPauseKey returns true for the space bar and 'p'
func IsPauseKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == ' ' || r == 'p' || r == 'P')
}

// IsRestartKey returns true for 'r'
func IsRestartKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'r' || r == 'R')
}

// KeyTracker turns key press events into per-tick held key snapshots
type KeyTracker struct {
	holdTicks int
	held      map[input.Key]int
	opposite  map[input.Key]input.Key
}

// NewKeyTracker creates a tracker. Pressing one key of a binding pair
// releases the other so direction changes take effect immediately.
func NewKeyTracker(holdTicks int, pairs ...input.Bindings) *KeyTracker {
	if holdTicks < 1 {
		holdTicks = HoldTicks
	}
	kt := &KeyTracker{
		holdTicks: holdTicks,
		held:      make(map[input.Key]int),
		opposite:  make(map[input.Key]input.Key),
	}
	for _, b := range pairs {
		kt.opposite[b.Up] = b.Down
		kt.opposite[b.Down] = b.Up
	}
	return kt
}

// HandleEvent records a key press. Returns false for unmapped keys.
func (kt *KeyTracker) HandleEvent(ev *tcell.EventKey) bool {
	k, ok := KeyFromEvent(ev.Key(), ev.Rune())
	if !ok {
		return false
	}
	kt.Press(k)
	return true
}

// Press marks k as held for the next holdTicks ticks
func (kt *KeyTracker) Press(k input.Key) {
	kt.held[k] = kt.holdTicks
	if other, ok := kt.opposite[k]; ok {
		delete(kt.held, other)
	}
}

// Snapshot returns the keys held for the current tick
func (kt *KeyTracker) Snapshot() input.Snapshot {
	s := make(input.Snapshot, len(kt.held))
	for k := range kt.held {
		s[k] = true
	}
	return s
}

// Advance ages every hold by one tick
func (kt *KeyTracker) Advance() {
	for k, left := range kt.held {
		if left <= 1 {
			delete(kt.held, k)
			continue
		}
		kt.held[k] = left - 1
	}
}

// Reset releases every key
func (kt *KeyTracker) Reset() {
	clear(kt.held)
}
