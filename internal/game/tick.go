package game

import "github.com/diegok/pong2d/internal/input"

// SimulateTick runs one frame: input mapping, physics step, velocity clamp.
// A nil physics skips the step.
func SimulateTick(keys input.State, w *World, c Controls, phys Physics, dt, maxVelocity float64) []Contact {
	w.Tick++

	w.ApplyInput(keys, c)

	var contacts []Contact
	if phys != nil {
		contacts = phys.Step(w, dt)
	}

	w.ClampBall(maxVelocity)

	return contacts
}
