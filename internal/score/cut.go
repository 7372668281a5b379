package score

import (
	"math"

	"git.lost.host/meutraa/beatstat/internal/game"
)

const (
	MaxBeforeCut = 30
	MaxAfterCut  = 20
	MaxDistance  = 50

	// MaxNoteScore is the best possible cut, and what every block adds to the max score.
	MaxNoteScore = MaxBeforeCut + MaxAfterCut + MaxDistance

	// DefaultSectorSize is the width of one accuracy sector in cut distance units.
	DefaultSectorSize = 0.6 / 29

	// DefaultPoodleWindow is the gap under which two hits on the same note id
	// are treated as a duplicated record.
	DefaultPoodleWindow = 0.01
)

// Negative scores mark timeline entries that are not clean cuts.
const (
	ScoreBad  = -2
	ScoreMiss = -3
	ScoreBomb = -4
	ScoreWall = -5
)

// Sectors are the boundary multipliers of the accuracy rings, inner first.
type Sectors [5]float64

// sectorScores[i] is awarded below boundary i, anything past the last scores 0.
var sectorScores = [5]int{50, 44, 36, 22, 10}

// ModSectors replaces the default sectors while Modifier is active.
type ModSectors struct {
	Modifier string
	Sectors  Sectors
}

// Config holds the scoring tables. The zero value is not usable, start from DefaultConfig.
type Config struct {
	SectorSize float64
	Sectors    Sectors
	// Checked in order, the first active modifier wins.
	ModSectors   []ModSectors
	PoodleWindow float64
}

func DefaultConfig() Config {
	return Config{
		SectorSize: DefaultSectorSize,
		Sectors:    Sectors{6.5, 9.5, 11.5, 13.5, 14.5},
		ModSectors: []ModSectors{
			{Modifier: "PM", Sectors: Sectors{4.5, 8.5, 11.5, 13.5, 14.5}},
			{Modifier: "EZ", Sectors: Sectors{7.5, 10.5, 12.5, 13.5, 14.5}},
		},
		PoodleWindow: DefaultPoodleWindow,
	}
}

func (c *Config) sectorsFor(mods game.Modifiers) Sectors {
	for _, ms := range c.ModSectors {
		if mods.Has(ms.Modifier) {
			return ms.Sectors
		}
	}
	return c.Sectors
}

// DistanceScore maps the distance from the note centre onto the sector ring it fell in.
func (c *Config) DistanceScore(cutDistanceToCenter float64, mods game.Modifiers) int {
	sectors := c.sectorsFor(mods)
	for i, b := range sectors {
		if cutDistanceToCenter < c.SectorSize*b {
			return sectorScores[i]
		}
	}
	return 0
}

// CutScores returns the before cut, after cut and distance parts of a cut.
func (c *Config) CutScores(cut *game.CutInfo, mods game.Modifiers) (int, int, int) {
	before := clamp(int(math.RoundToEven(MaxBeforeCut*cut.BeforeCutRating)), 0, MaxBeforeCut)
	after := clamp(int(math.RoundToEven(MaxAfterCut*cut.AfterCutRating)), 0, MaxAfterCut)
	return before, after, c.DistanceScore(cut.CutDistanceToCenter, mods)
}

// NoteScore is the cut total for good events and 0 for everything else.
func (c *Config) NoteScore(note *game.NoteEvent, mods game.Modifiers) int {
	if note.Type != game.Good || nil == note.Cut {
		return 0
	}
	before, after, distance := c.CutScores(note.Cut, mods)
	return before + after + distance
}

// timelineScore is NoteScore with the miss kinds spelled out as negative markers.
func (c *Config) timelineScore(note *game.NoteEvent, mods game.Modifiers) int {
	switch note.Type {
	case game.Bad:
		return ScoreBad
	case game.Miss:
		return ScoreMiss
	case game.Bomb:
		return ScoreBomb
	}
	return c.NoteScore(note, mods)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// average divides only when something was counted, leaving zero otherwise.
func average(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
