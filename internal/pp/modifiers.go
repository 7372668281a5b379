package pp

import (
	"sort"

	"git.lost.host/meutraa/beatstat/internal/game"
)

// ModifierTable maps modifier codes to their score multiplier offset,
// +0.04 meaning four percent on top. It is read only after construction.
type ModifierTable struct {
	values map[string]float64
}

func NewModifierTable(values map[string]float64) ModifierTable {
	t := ModifierTable{values: make(map[string]float64, len(values))}
	for k, v := range values {
		t.values[k] = v
	}
	return t
}

func DefaultModifierTable() ModifierTable {
	return NewModifierTable(map[string]float64{
		"DA": 0.0,
		"FS": 0.04,
		"SF": 0.08,
		"GN": 0.04,
		"PM": 0.12,
		"SC": 0.0,
		"SA": 0.0,
		"BE": 0.0,
		"SS": -0.30,
		"NF": -0.50,
		"NA": -0.30,
		"NB": -0.20,
		"NO": -0.20,
		"OD": -0.20,
	})
}

func (t ModifierTable) Value(code string) (float64, bool) {
	v, ok := t.values[code]
	return v, ok
}

// Codes lists the known modifiers in order.
func (t ModifierTable) Codes() []string {
	codes := make([]string, 0, len(t.values))
	for k := range t.values {
		codes = append(codes, k)
	}
	sort.Strings(codes)
	return codes
}

type Multipliers struct {
	// Raw adds every active offset to 1.
	Raw float64
	// Negative multiplies only the penalties.
	Negative float64
	// Positive multiplies only the bonuses.
	Positive float64
}

// Multipliers ignores codes missing from the table.
func (t ModifierTable) Multipliers(mods game.Modifiers) Multipliers {
	m := Multipliers{Raw: 1, Negative: 1, Positive: 1}
	for _, code := range mods.Codes() {
		v, ok := t.values[code]
		if !ok {
			continue
		}
		m.Raw += v
		switch {
		case v < 0:
			m.Negative *= 1 + v
		case v > 0:
			m.Positive *= 1 + v
		}
	}
	return m
}
