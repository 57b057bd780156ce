package physics

import (
	"math"

	"github.com/diegok/pong2d/internal/game"
)

// priority orders combine rules when two bodies disagree
var priority = map[game.Combine]int{
	game.CombineAverage:  0,
	game.CombineMin:      1,
	game.CombineMultiply: 2,
	game.CombineMax:      3,
}

// Apply mixes two coefficients with the rule
func Apply(rule game.Combine, a, b float64) float64 {
	switch rule {
	case game.CombineMin:
		return math.Min(a, b)
	case game.CombineMultiply:
		return a * b
	case game.CombineMax:
		return math.Max(a, b)
	default:
		return (a + b) / 2
	}
}

// CombineRestitution picks the higher priority rule of the two and applies it
func CombineRestitution(a, b game.Restitution) float64 {
	rule := a.Combine
	if priority[b.Combine] > priority[rule] {
		rule = b.Combine
	}
	return Apply(rule, a.Coefficient, b.Coefficient)
}
