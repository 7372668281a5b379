// Package validate rejects replays that should not be scored and removes
// duplicated note records left by a known recorder bug.
package validate

import (
	"fmt"

	"git.lost.host/meutraa/beatstat/internal/game"
	"git.lost.host/meutraa/beatstat/internal/score"
)

const (
	// DefaultMinNoteRatio is the share of the chart's notes a replay must contain.
	DefaultMinNoteRatio = 0.8

	// DefaultSaberGrace is how long before the end a wrong saber cut is ignored, in seconds.
	DefaultSaberGrace = 1.0
)

type Config struct {
	MinNoteRatio float64
	// ExemptModifiers skip the note count check.
	ExemptModifiers []string
	SaberGrace      float64
}

func DefaultConfig() Config {
	return Config{
		MinNoteRatio:    DefaultMinNoteRatio,
		ExemptModifiers: []string{"NF"},
		SaberGrace:      DefaultSaberGrace,
	}
}

// Validate returns nil for acceptable replays, a *RejectionError for policy
// failures and a score.ErrMalformed wrapped error for unusable input.
func Validate(r *game.Replay, chart game.Chart, cfg Config) error {
	if nil == r || len(r.Notes) == 0 {
		return fmt.Errorf("%w: empty event list", score.ErrMalformed)
	}

	notes := 0
	for i := range r.Notes {
		if r.Notes[i].IsBlock() {
			notes++
		}
	}
	minimum := float64(chart.NoteCount) * cfg.MinNoteRatio
	if chart.NoteCount > 0 && float64(notes) < minimum && !r.Info.Modifiers.HasAny(cfg.ExemptModifiers) {
		return reject(ErrTooFewNotes, "%d of %d notes recorded, need %.0f", notes, chart.NoteCount, minimum)
	}

	if !chart.Status.Checked() {
		return nil
	}
	end := r.Duration()
	for i := range r.Notes {
		note := &r.Notes[i]
		if note.Type != game.Good || nil == note.Cut {
			continue
		}
		if note.EventTime >= end-cfg.SaberGrace {
			continue
		}
		color := note.Params.Color
		if color != game.Left && color != game.Right {
			continue
		}
		if game.SaberType(color) != note.Cut.SaberType {
			return reject(ErrWrongSaber, "note %d at %.3fs was cut with the other saber", note.NoteID, note.EventTime)
		}
	}
	return nil
}
