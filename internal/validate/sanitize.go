package validate

import (
	"math"
	"sort"

	"git.lost.host/meutraa/beatstat/internal/game"
)

type Removal struct {
	NoteID    int     `json:"noteId"`
	EventTime float64 `json:"eventTime"`
	// KeptTime is the event time of the record that was kept instead.
	KeptTime float64 `json:"keptTime"`
	// Index is the position in the original note list.
	Index int `json:"index"`
}

type Report struct {
	Removed []Removal `json:"removed"`
}

func (r Report) Changed() bool {
	return len(r.Removed) > 0
}

// Sanitize drops note records that repeat the id of a kept record less than
// window seconds earlier. Burst slider elements share ids and are never
// dropped. The input is left untouched; statistics must be recomputed from
// the returned replay.
func Sanitize(r *game.Replay, window float64) (*game.Replay, Report) {
	order := make([]int, len(r.Notes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return r.Notes[order[a]].EventTime < r.Notes[order[b]].EventTime
	})

	report := Report{Removed: []Removal{}}
	drop := make([]bool, len(r.Notes))
	kept := map[int]float64{}
	for _, i := range order {
		note := &r.Notes[i]
		if note.Params.ScoringType == game.BurstSliderElement {
			continue
		}
		if t, ok := kept[note.NoteID]; ok && math.Abs(note.EventTime-t) < window {
			drop[i] = true
			report.Removed = append(report.Removed, Removal{
				NoteID:    note.NoteID,
				EventTime: note.EventTime,
				KeptTime:  t,
				Index:     i,
			})
			continue
		}
		kept[note.NoteID] = note.EventTime
	}

	out := r.Copy()
	if !report.Changed() {
		return out, report
	}
	out.Notes = out.Notes[:0]
	for i, note := range r.Notes {
		if !drop[i] {
			out.Notes = append(out.Notes, note)
		}
	}
	return out, report
}
