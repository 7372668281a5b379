package game

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCut is returned when cut parameters cannot be scored.
var ErrInvalidCut = errors.New("invalid cut info")

type EventType uint8

const (
	Good EventType = iota
	Bad
	Miss
	Bomb
)

func (t EventType) String() string {
	switch t {
	case Good:
		return "good"
	case Bad:
		return "bad"
	case Miss:
		return "miss"
	case Bomb:
		return "bomb"
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// ParseEventType accepts both the numeric and the named form used by decoders.
func ParseEventType(s string) (EventType, error) {
	switch s {
	case "0", "good":
		return Good, nil
	case "1", "bad":
		return Bad, nil
	case "2", "miss":
		return Miss, nil
	case "3", "bomb":
		return Bomb, nil
	}
	return 0, fmt.Errorf("unknown event type %q", s)
}

type ScoringType int

const (
	Default ScoringType = iota
	Ignore
	NoScore
	Normal
	SliderHead
	SliderTail
	BurstSliderHead
	BurstSliderElement
)

// IsBurst reports burst slider heads and elements, which skip the grid and
// hand accumulators.
func (s ScoringType) IsBurst() bool {
	return s == BurstSliderHead || s == BurstSliderElement
}

type ColorType int

const (
	Left ColorType = iota
	Right
	BombColor
)

type SaberType int

const (
	SaberLeft SaberType = iota
	SaberRight
)

type Vector3 struct {
	X, Y, Z float64
}

// NoteParams is the decoded form of a note id:
// scoringType*10000 + lineIndex*1000 + layer*100 + color*10 + cutDirection.
type NoteParams struct {
	ScoringType  ScoringType
	LineIndex    int
	Layer        int
	Color        ColorType
	CutDirection int
}

func DecodeNoteID(id int) NoteParams {
	var p NoteParams
	if id < 0 {
		// Negative ids come from mapping-extension charts, treat them as plain notes.
		id = -id
	}
	if id >= 100000 {
		id %= 100000
	}
	p.ScoringType = ScoringType(id / 10000)
	id %= 10000
	p.LineIndex = id / 1000
	id %= 1000
	p.Layer = id / 100
	id %= 100
	p.Color = ColorType(id / 10)
	p.CutDirection = id % 10
	return p
}

// GridIndex is the 4x3 grid cell, falling back to cell 0 off the grid.
func (p NoteParams) GridIndex() int {
	index := p.Layer*4 + p.LineIndex
	if index < 0 || index > 11 {
		return 0
	}
	return index
}

type CutInfo struct {
	SpeedOK             bool
	DirectionOK         bool
	SaberTypeOK         bool
	WasCutTooSoon       bool
	SaberSpeed          float64
	SaberType           SaberType
	TimeDeviation       float64
	CutDirDeviation     float64
	CutPoint            Vector3
	CutNormal           Vector3
	CutDistanceToCenter float64
	CutAngle            float64
	BeforeCutRating     float64
	AfterCutRating      float64
}

// Validate rejects values no scoring rule can work with. Ratings outside
// [0,1] are allowed, the calculators clamp them.
func (c *CutInfo) Validate() error {
	values := []struct {
		name  string
		value float64
	}{
		{"beforeCutRating", c.BeforeCutRating},
		{"afterCutRating", c.AfterCutRating},
		{"cutDistanceToCenter", c.CutDistanceToCenter},
		{"cutNormal.z", c.CutNormal.Z},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidCut, v.name, v.value)
		}
	}
	if c.CutDistanceToCenter < 0 {
		return fmt.Errorf("%w: negative cutDistanceToCenter %v", ErrInvalidCut, c.CutDistanceToCenter)
	}
	return nil
}

type NoteEvent struct {
	NoteID    int
	Params    NoteParams
	Type      EventType
	SpawnTime float64
	EventTime float64
	Cut       *CutInfo // set for good cuts and recorded bomb hits
}

// NewNoteEvent decodes the note id and validates the cut of good events.
func NewNoteEvent(id int, t EventType, spawnTime, eventTime float64, cut *CutInfo) (NoteEvent, error) {
	note := NoteEvent{
		NoteID:    id,
		Params:    DecodeNoteID(id),
		Type:      t,
		SpawnTime: spawnTime,
		EventTime: eventTime,
	}
	if t > Bomb {
		return note, fmt.Errorf("note %d: unknown event type %d", id, t)
	}
	if math.IsNaN(eventTime) || math.IsInf(eventTime, 0) {
		return note, fmt.Errorf("note %d: invalid event time %v", id, eventTime)
	}
	if t == Good {
		if nil == cut {
			return note, fmt.Errorf("note %d: %w: good cut without cut info", id, ErrInvalidCut)
		}
		if err := cut.Validate(); nil != err {
			return note, fmt.Errorf("note %d: %w", id, err)
		}
	}
	if nil != cut {
		// Bomb hits keep the cut too, it names the saber that touched the bomb.
		c := *cut
		note.Cut = &c
	}
	return note, nil
}

// IsBlock reports whether the note counts towards the max score.
func (n *NoteEvent) IsBlock() bool {
	return n.Type != Bomb && n.Params.Color != BombColor
}
