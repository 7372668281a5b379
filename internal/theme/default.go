package theme

import (
	"math"
	"strings"

	"git.lost.host/meutraa/beatstat/internal/game"
)

type DefaultTheme struct {
	// Grades are ordered from the highest lower bound down.
	Grades []game.Grade
}

var (
	DefaultGrades = []game.Grade{
		{Accuracy: 0.9, Name: "SS"},
		{Accuracy: 0.8, Name: "S"},
		{Accuracy: 0.65, Name: "A"},
		{Accuracy: 0.5, Name: "B"},
		{Accuracy: 0.35, Name: "C"},
		{Accuracy: 0.2, Name: "D"},
		{Accuracy: 0, Name: "E"},
	}
	gradeColors = map[string]Color{
		"SS": {173, 236, 236}, // light blue
		"S":  {236, 195, 0},   // yellow
		"A":  {0, 236, 128},   // green
		"B":  {0, 118, 236},   // blue
		"C":  {106, 0, 236},   // purple
		"D":  {236, 128, 0},   // orange
		"E":  {236, 30, 0},    // red
		"":   {255, 255, 255}, // other white
	}
	handColors = map[game.ColorType]Color{
		game.Left:      {236, 30, 0},
		game.Right:     {0, 118, 236},
		game.BombColor: {106, 106, 106},
	}
	sparks = [...]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
)

func NewDefaultTheme() *DefaultTheme {
	return &DefaultTheme{Grades: DefaultGrades}
}

func (t *DefaultTheme) Grade(accuracy float64) game.Grade {
	for _, g := range t.Grades {
		if accuracy >= g.Accuracy {
			return g
		}
	}
	return game.Grade{Accuracy: 0, Name: "E"}
}

func (t *DefaultTheme) GradeColor(grade game.Grade) Color {
	col, ok := gradeColors[grade.Name]
	if !ok {
		return gradeColors[""]
	}
	return col
}

func (t *DefaultTheme) HandColor(color game.ColorType) Color {
	col, ok := handColors[color]
	if !ok {
		return gradeColors[""]
	}
	return col
}

// Sparkline draws values in [0,1] as block characters, out of range values are clamped.
func (t *DefaultTheme) Sparkline(values []float64) string {
	var b strings.Builder
	top := float64(len(sparks) - 1)
	for _, v := range values {
		v = math.Max(0, math.Min(1, v))
		b.WriteRune(sparks[int(math.Round(v*top))])
	}
	return b.String()
}
