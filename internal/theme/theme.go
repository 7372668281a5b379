package theme

import "git.lost.host/meutraa/beatstat/internal/game"

type Color struct {
	R, G, B uint8
}

type Theme interface {
	Grade(accuracy float64) game.Grade
	GradeColor(grade game.Grade) Color
	HandColor(color game.ColorType) Color
	Sparkline(values []float64) string
}
