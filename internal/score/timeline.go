package score

import (
	"math"
	"sort"

	"git.lost.host/meutraa/beatstat/internal/game"
)

// NoteStruct is one entry of the merged note and wall timeline.
type NoteStruct struct {
	Time        float64
	ID          int
	IsBlock     bool
	IsWall      bool
	Score       int
	ScoringType game.ScoringType
	SpawnTime   float64
	Color       game.ColorType

	// Accuracy is filled in by RunTimeline.
	Accuracy float64
}

// BuildTimeline merges notes and walls and orders them by time. Entries with
// equal times keep notes before walls, each in replay order.
func BuildTimeline(r *game.Replay, cfg Config) []NoteStruct {
	timeline := make([]NoteStruct, 0, len(r.Notes)+len(r.Walls))
	mods := r.Info.Modifiers
	for i := range r.Notes {
		note := &r.Notes[i]
		timeline = append(timeline, NoteStruct{
			Time:        note.EventTime,
			ID:          note.NoteID,
			IsBlock:     note.IsBlock(),
			Score:       cfg.timelineScore(note, mods),
			ScoringType: note.Params.ScoringType,
			SpawnTime:   note.SpawnTime,
			Color:       note.Params.Color,
		})
	}
	for _, wall := range r.Walls {
		timeline = append(timeline, NoteStruct{
			Time:        wall.Time,
			ID:          wall.WallID,
			IsWall:      true,
			Score:       ScoreWall,
			ScoringType: game.Ignore,
			SpawnTime:   wall.SpawnTime,
		})
	}
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Time < timeline[j].Time
	})
	return timeline
}

// DetectCorruption reports two hits on the same note id closer than window,
// a known replay recorder bug. Burst slider elements legitimately share ids.
func DetectCorruption(timeline []NoteStruct, window float64) bool {
	last := map[int]float64{}
	for _, n := range timeline {
		if n.IsWall || n.ScoringType == game.BurstSliderElement {
			continue
		}
		if t, ok := last[n.ID]; ok && math.Abs(n.Time-t) < window {
			return true
		}
		last[n.ID] = n.Time
	}
	return false
}

type Totals struct {
	Score      int
	MaxScore   int
	FCScore    int
	FCAccuracy float64
	MaxCombo   int
}

// Accuracy is Score over MaxScore, 0 for an empty chart.
func (t Totals) Accuracy() float64 {
	if t.MaxScore == 0 {
		return 0
	}
	return float64(t.Score) / float64(t.MaxScore)
}

// RunTimeline walks the timeline once, returning a copy with per entry accuracy
// filled in and the running totals at the end.
//
// Missed and badly cut blocks add to the full combo score as if they had been
// hit at the accuracy reached so far. Walls and bombs change no total and
// carry the previous accuracy forward.
func RunTimeline(timeline []NoteStruct) ([]NoteStruct, Totals) {
	out := make([]NoteStruct, len(timeline))
	copy(out, timeline)

	var t Totals
	combo := 0
	for i := range out {
		n := &out[i]
		if !n.IsBlock {
			if i > 0 {
				n.Accuracy = out[i-1].Accuracy
			}
			combo = 0
			continue
		}

		t.MaxScore += MaxNoteScore
		if n.Score >= 0 {
			t.Score += n.Score
			t.FCScore += n.Score
			combo++
			if combo > t.MaxCombo {
				t.MaxCombo = combo
			}
		} else {
			t.FCScore += int(math.RoundToEven(MaxNoteScore * t.FCAccuracy))
			combo = 0
		}
		t.FCAccuracy = float64(t.FCScore) / float64(t.MaxScore)
		n.Accuracy = float64(t.Score) / float64(t.MaxScore)
	}
	return out, t
}

// MaxStreak is the longest run of perfect cuts. It is nil for corrupted
// replays, where duplicated hits make any streak untrustworthy.
func MaxStreak(timeline []NoteStruct, corrupted bool) *int {
	if corrupted {
		return nil
	}
	best, streak := 0, 0
	for _, n := range timeline {
		if !n.IsBlock || n.ScoringType == game.BurstSliderElement {
			continue
		}
		if n.Score == MaxNoteScore {
			streak++
			continue
		}
		if streak > best {
			best = streak
		}
		streak = 0
	}
	if streak > best {
		best = streak
	}
	return &best
}
