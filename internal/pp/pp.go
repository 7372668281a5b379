// Package pp turns accuracy and star rating into performance points.
package pp

import (
	"math"

	"git.lost.host/meutraa/beatstat/internal/game"
)

const (
	// PPPerStar scales the curve into points.
	PPPerStar = 42

	// curveCeilingGap keeps accuracy below the curve's asymptote.
	curveCeilingGap = 0.0001
)

// Curve is the difficulty curve, 1 at the reference accuracy a of a chart of
// the given stars and growing without bound towards its ceiling l.
func Curve(acc, stars float64) float64 {
	if acc <= 0 {
		return 0
	}
	l := 1 - 0.03*(stars-3)/11
	a := 0.96 * l
	f := 1.2 - 0.6*stars/14
	if acc >= l {
		acc = l - curveCeilingGap
	}
	return math.Pow(math.Log10(l/(l-acc))/math.Log10(l/(l-a)), f)
}

// Points is the pp of a play at acc on a chart of the given stars.
func Points(acc, stars float64) float64 {
	if stars <= 0 {
		return 0
	}
	return Curve(acc, stars-0.5) * (stars + 0.5) * PPPerStar
}

type Result struct {
	Raw   float64 `json:"raw"`
	Full  float64 `json:"full"`
	Bonus float64 `json:"bonus"`
}

type Calculator struct {
	Modifiers ModifierTable
}

func NewCalculator() *Calculator {
	return &Calculator{Modifiers: DefaultModifierTable()}
}

// Compute returns the unmodified pp, the pp with bonus modifiers applied to
// the star rating, and the difference.
func (c *Calculator) Compute(acc, stars float64, mods game.Modifiers) Result {
	m := c.Modifiers.Multipliers(mods)
	mp := 1 + (m.Positive-1)*2

	raw := Points(acc, stars)
	full := Points(acc, stars*mp)
	return Result{Raw: raw, Full: full, Bonus: full - raw}
}

// ModifiedScore applies the penalty modifiers to a base score, as ranked
// leaderboards do.
func (c *Calculator) ModifiedScore(base int, mods game.Modifiers) int {
	m := c.Modifiers.Multipliers(mods)
	return int(math.Round(float64(base) * m.Negative))
}
