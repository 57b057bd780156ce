package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong2d/internal/input"
)

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		key    tcell.Key
		rune   rune
		want   input.Key
		wantOK bool
	}{
		{tcell.KeyUp, 0, input.KeyUp, true},
		{tcell.KeyDown, 0, input.KeyDown, true},
		{tcell.KeyRune, 'w', input.KeyW, true},
		{tcell.KeyRune, 'W', input.KeyW, true},
		{tcell.KeyRune, 's', input.KeyS, true},
		{tcell.KeyRune, 'S', input.KeyS, true},
		{tcell.KeyRune, 'x', "", false},
		{tcell.KeyLeft, 0, "", false},
	}

	for _, tt := range tests {
		got, ok := KeyFromEvent(tt.key, tt.rune)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("KeyFromEvent(%v, %c) = %q, %v, want %q, %v", tt.key, tt.rune, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyRune, 'q') {
		t.Error("'q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyRune, 'Q') {
		t.Error("'Q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyEscape, 0) {
		t.Error("Escape should be quit key")
	}
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl+C should be quit key")
	}
	if IsQuitKey(tcell.KeyRune, 'x') {
		t.Error("'x' should not be quit key")
	}
}

func TestIsPauseAndRestartKey(t *testing.T) {
	if !IsPauseKey(tcell.KeyRune, ' ') || !IsPauseKey(tcell.KeyRune, 'p') {
		t.Error("space and 'p' should pause")
	}
	if IsPauseKey(tcell.KeyRune, 'w') {
		t.Error("'w' should not pause")
	}
	if !IsRestartKey(tcell.KeyRune, 'R') {
		t.Error("'R' should restart")
	}
	if IsRestartKey(tcell.KeyEnter, 0) {
		t.Error("Enter should not restart")
	}
}

func TestKeyTracker_HoldExpires(t *testing.T) {
	kt := NewKeyTracker(3)

	if !kt.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Fatal("expected 'w' to be handled")
	}

	for i := 0; i < 3; i++ {
		if !kt.Snapshot().Pressed(input.KeyW) {
			t.Fatalf("expected 'w' held on tick %d", i)
		}
		kt.Advance()
	}

	if kt.Snapshot().Pressed(input.KeyW) {
		t.Error("expected 'w' released after hold expired")
	}
}

func TestKeyTracker_RepeatExtendsHold(t *testing.T) {
	kt := NewKeyTracker(2)

	kt.Press(input.KeyUp)
	kt.Advance()
	kt.Press(input.KeyUp)
	kt.Advance()

	if !kt.Snapshot().Pressed(input.KeyUp) {
		t.Error("expected repeat to keep the key held")
	}
}

func TestKeyTracker_OppositeKeyReleases(t *testing.T) {
	kt := NewKeyTracker(HoldTicks, input.LeftBindings, input.RightBindings)

	kt.Press(input.KeyW)
	kt.Press(input.KeyUp)
	kt.Press(input.KeyS)

	s := kt.Snapshot()
	if s.Pressed(input.KeyW) {
		t.Error("expected 's' to release 'w'")
	}
	if !s.Pressed(input.KeyS) || !s.Pressed(input.KeyUp) {
		t.Error("expected 's' and up to stay held")
	}
}

func TestKeyTracker_IgnoresUnmappedAndResets(t *testing.T) {
	kt := NewKeyTracker(0)

	if kt.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)) {
		t.Error("expected 'z' to be ignored")
	}

	kt.Press(input.KeyDown)
	kt.Reset()
	if len(kt.Snapshot()) != 0 {
		t.Error("expected no keys after reset")
	}
}
