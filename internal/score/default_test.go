package score

import (
	"errors"
	"testing"

	"git.lost.host/meutraa/beatstat/internal/game"
	"git.lost.host/meutraa/beatstat/internal/testdata"
)

func TestPerfectTenNotes(t *testing.T) {
	scorer := NewDefaultScorer()
	stats, err := scorer.Statistics(testdata.PerfectReplay(10))
	if nil != err {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.WinTracker.TotalScore != 1000 || stats.WinTracker.MaxScore != 1000 {
		t.Errorf("TotalScore, MaxScore = %d, %d, want 1000, 1000", stats.WinTracker.TotalScore, stats.WinTracker.MaxScore)
	}
	if stats.Accuracy() != 1 {
		t.Errorf("Accuracy = %v, want 1", stats.Accuracy())
	}
	if nil == stats.HitTracker.MaxStreak || *stats.HitTracker.MaxStreak != 10 {
		t.Errorf("MaxStreak = %v, want 10", stats.HitTracker.MaxStreak)
	}
	if !stats.WinTracker.FullCombo {
		t.Error("expected a full combo")
	}
	if stats.HitTracker.MaxCombo != 10 {
		t.Errorf("MaxCombo = %d, want 10", stats.HitTracker.MaxCombo)
	}
	if stats.AccuracyTracker.FCAcc != 1 {
		t.Errorf("FCAcc = %v, want 1", stats.AccuracyTracker.FCAcc)
	}
	if len(stats.ScoreGraphTracker.Graph) != 11 {
		t.Errorf("len(graph) = %d, want 11", len(stats.ScoreGraphTracker.Graph))
	}
	for _, v := range stats.ScoreGraphTracker.Graph {
		if v != 1 {
			t.Errorf("graph = %v, want all ones", stats.ScoreGraphTracker.Graph)
			break
		}
	}
}

func TestTotalScoreIsSumOfNoteScores(t *testing.T) {
	r := testdata.PerfectReplay(0)
	cuts := []*game.CutInfo{
		testdata.Cut(0.9, 0.8, 0.01),
		testdata.Cut(1, 0.6, 0.15),
		testdata.Cut(0.4, 1, 0.25),
		testdata.Cut(0.75, 0.35, 0.29),
	}
	for i, cut := range cuts {
		r.Notes = append(r.Notes, testdata.Note(testdata.NoteID(game.Normal, i, 0, game.ColorType(i%2), 1), game.Good, float64(i)+0.5, cut))
	}
	r.Notes = append(r.Notes, testdata.Note(30100, game.Miss, 5, nil))
	r.Notes = append(r.Notes, testdata.Note(30111, game.Bad, 6, testdata.Cut(0.1, 0.1, 0.1)))

	scorer := NewDefaultScorer()
	stats, err := scorer.Statistics(r)
	if nil != err {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := 0
	for i := range r.Notes {
		sum += scorer.Config.NoteScore(&r.Notes[i], r.Info.Modifiers)
	}
	if sum != stats.WinTracker.TotalScore {
		t.Errorf("sum of note scores = %d, TotalScore = %d", sum, stats.WinTracker.TotalScore)
	}
	if stats.WinTracker.MaxScore != 600 {
		t.Errorf("MaxScore = %d, want 600", stats.WinTracker.MaxScore)
	}
	if stats.WinTracker.FullCombo {
		t.Error("a miss breaks the full combo")
	}
	if stats.HitTracker.LeftMiss != 1 || stats.HitTracker.RightBadCuts != 1 {
		t.Errorf("hit counters = %+v", stats.HitTracker)
	}
}

func TestCorruptedReplayHasNoStreak(t *testing.T) {
	r := testdata.PerfectReplay(6)
	dup := r.Notes[2]
	dup.EventTime += 0.004
	r.Notes = append(r.Notes, dup)

	result, err := NewDefaultScorer().Run(r)
	if nil != err {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Corrupted {
		t.Error("duplicate hit was not detected")
	}
	if nil != result.Statistics.HitTracker.MaxStreak {
		t.Errorf("MaxStreak = %d, want nil", *result.Statistics.HitTracker.MaxStreak)
	}
	// every other metric is still computed
	if result.Statistics.WinTracker.TotalScore != 700 {
		t.Errorf("TotalScore = %d, want 700", result.Statistics.WinTracker.TotalScore)
	}
}

func TestWallsBreakFullCombo(t *testing.T) {
	r := testdata.PerfectReplay(4)
	r.Walls = []game.WallEvent{{WallID: 9, Time: 2.5, Energy: 0.9}}
	r.Pauses = []game.PauseEvent{{Duration: 2, Time: 1.2}, {Duration: 5, Time: 3.4}}

	stats, err := NewDefaultScorer().Statistics(r)
	if nil != err {
		t.Fatalf("unexpected error: %v", err)
	}
	w := stats.WinTracker
	if w.FullCombo || w.TotalScore != 400 || w.MaxScore != 400 {
		t.Errorf("WinTracker = %+v", w)
	}
	if w.PauseCount != 2 || w.TotalPauseDuration != 7 {
		t.Errorf("pauses = %d, %v", w.PauseCount, w.TotalPauseDuration)
	}
	if stats.HitTracker.MaxCombo != 2 {
		t.Errorf("MaxCombo = %d, want 2", stats.HitTracker.MaxCombo)
	}
	if streak := stats.HitTracker.MaxStreak; nil == streak || *streak != 4 {
		t.Errorf("walls should not break the streak, got %v", streak)
	}
}

func TestBombsPerHand(t *testing.T) {
	rightCut := testdata.Cut(0, 0, 0)
	rightCut.SaberType = game.SaberRight
	bombs := []struct {
		id  int
		cut *game.CutInfo
	}{
		{testdata.NoteID(game.Normal, 0, 0, game.Left, 0), nil},
		{testdata.NoteID(game.Normal, 1, 0, game.Right, 0), nil},
		{testdata.NoteID(game.Default, 2, 0, game.BombColor, 0), nil},
		{testdata.NoteID(game.Default, 3, 0, game.BombColor, 0), nil},
		{testdata.NoteID(game.Default, 3, 1, game.BombColor, 0), rightCut},
	}

	r := testdata.PerfectReplay(2)
	for i, b := range bombs {
		note, err := game.NewNoteEvent(b.id, game.Bomb, 0, 3+float64(i)/10, b.cut)
		if nil != err {
			t.Fatal(err)
		}
		r.Notes = append(r.Notes, note)
	}

	stats, err := NewDefaultScorer().Statistics(r)
	if nil != err {
		t.Fatalf("unexpected error: %v", err)
	}
	h := stats.HitTracker
	if h.LeftBombs != 1 || h.RightBombs != 2 {
		t.Errorf("LeftBombs, RightBombs = %d, %d, want 1, 2", h.LeftBombs, h.RightBombs)
	}
}

func TestMalformedReplays(t *testing.T) {
	scorer := NewDefaultScorer()
	empty := testdata.PerfectReplay(0)
	broken := testdata.PerfectReplay(2)
	broken.Notes[1].Cut = nil

	for name, r := range map[string]*game.Replay{"nil": nil, "empty": empty, "no cut": broken} {
		stats, err := scorer.Statistics(r)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: err = %v, want ErrMalformed", name, err)
		}
		if nil != stats {
			t.Errorf("%s: expected nil statistics", name)
		}
	}
}

func TestDeterministic(t *testing.T) {
	r := testdata.PerfectReplay(12)
	r.Notes[3] = testdata.Note(r.Notes[3].NoteID, game.Good, r.Notes[3].EventTime, testdata.Cut(0.71, 0.33, 0.17))
	a, _ := NewDefaultScorer().Statistics(r)
	b, _ := NewDefaultScorer().Statistics(r)
	if a.AccuracyTracker != b.AccuracyTracker || a.WinTracker != b.WinTracker {
		t.Error("repeated runs differ")
	}
}
