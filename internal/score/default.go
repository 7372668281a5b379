package score

import (
	"fmt"

	"git.lost.host/meutraa/beatstat/internal/game"
)

type DefaultScorer struct {
	Config Config
}

func NewDefaultScorer() *DefaultScorer {
	return &DefaultScorer{Config: DefaultConfig()}
}

func (s *DefaultScorer) check(r *game.Replay) error {
	if nil == r {
		return fmt.Errorf("%w: nil replay", ErrMalformed)
	}
	if len(r.Notes) == 0 {
		return fmt.Errorf("%w: empty event list", ErrMalformed)
	}
	for i := range r.Notes {
		note := &r.Notes[i]
		if note.Type != game.Good {
			continue
		}
		if nil == note.Cut {
			return fmt.Errorf("%w: note %d at %.3f has no cut info", ErrMalformed, note.NoteID, note.EventTime)
		}
		if err := note.Cut.Validate(); nil != err {
			return fmt.Errorf("%w: note %d at %.3f: %v", ErrMalformed, note.NoteID, note.EventTime, err)
		}
	}
	return nil
}

func (s *DefaultScorer) Run(r *game.Replay) (*Result, error) {
	if err := s.check(r); nil != err {
		return nil, err
	}

	timeline := BuildTimeline(r, s.Config)
	corrupted := DetectCorruption(timeline, s.Config.PoodleWindow)
	timeline, totals := RunTimeline(timeline)

	accuracy := TrackAccuracy(r.Notes, r.Info.Modifiers, s.Config)
	accuracy.FCAcc = totals.FCAccuracy

	hits := trackHits(r.Notes)
	hits.MaxCombo = totals.MaxCombo
	hits.MaxStreak = MaxStreak(timeline, corrupted)

	stats := &Statistics{
		AccuracyTracker:   accuracy,
		HitTracker:        hits,
		WinTracker:        trackWin(r, totals),
		ScoreGraphTracker: ScoreGraphTracker{Graph: BuildScoreGraph(timeline, r.Duration())},
	}
	return &Result{
		Statistics: stats,
		Timeline:   timeline,
		Totals:     totals,
		Corrupted:  corrupted,
	}, nil
}

func (s *DefaultScorer) Statistics(r *game.Replay) (*Statistics, error) {
	result, err := s.Run(r)
	if nil != err {
		return nil, err
	}
	return result.Statistics, nil
}

func trackHits(notes []game.NoteEvent) HitTracker {
	var h HitTracker
	var leftTiming, rightTiming float64
	var leftCuts, rightCuts int
	for i := range notes {
		note := &notes[i]
		left := note.Params.Color == game.Left
		switch note.Type {
		case game.Good:
			if left {
				leftTiming += note.Cut.TimeDeviation
				leftCuts++
			} else {
				rightTiming += note.Cut.TimeDeviation
				rightCuts++
			}
		case game.Bad:
			if left {
				h.LeftBadCuts++
			} else {
				h.RightBadCuts++
			}
		case game.Miss:
			if left {
				h.LeftMiss++
			} else {
				h.RightMiss++
			}
		case game.Bomb:
			// The decoded colour names the hand, otherwise the saber in a recorded cut does.
			switch {
			case note.Params.Color == game.Left:
				h.LeftBombs++
			case note.Params.Color == game.Right:
				h.RightBombs++
			case nil != note.Cut && note.Cut.SaberType == game.SaberLeft:
				h.LeftBombs++
			case nil != note.Cut && note.Cut.SaberType == game.SaberRight:
				h.RightBombs++
			}
		}
	}
	h.LeftTiming = average(leftTiming, leftCuts)
	h.RightTiming = average(rightTiming, rightCuts)
	return h
}

func trackWin(r *game.Replay, t Totals) WinTracker {
	w := WinTracker{
		Won:           !r.Failed(),
		EndTime:       r.Duration(),
		PauseCount:    len(r.Pauses),
		JumpDistance:  r.Info.JumpDistance,
		AverageHeight: r.Info.Height,
		TotalScore:    t.Score,
		MaxScore:      t.MaxScore,
		FullCombo:     len(r.Walls) == 0,
	}
	for _, p := range r.Pauses {
		w.TotalPauseDuration += float64(p.Duration)
	}
	for i := range r.Notes {
		if r.Notes[i].Type != game.Good {
			w.FullCombo = false
			break
		}
	}
	return w
}
