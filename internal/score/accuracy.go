package score

import (
	"math"

	"git.lost.host/meutraa/beatstat/internal/game"
)

// Out of range ratings in replay data are ignored by the swing averages.
const ratingLimit = 5

type AccuracyTracker struct {
	AccRight            float64     `json:"accRight"`
	AccLeft             float64     `json:"accLeft"`
	LeftPreswing        float64     `json:"leftPreswing"`
	RightPreswing       float64     `json:"rightPreswing"`
	AveragePreswing     float64     `json:"averagePreswing"`
	LeftPostswing       float64     `json:"leftPostswing"`
	RightPostswing      float64     `json:"rightPostswing"`
	AveragePostswing    float64     `json:"averagePostswing"`
	LeftTimeDependence  float64     `json:"leftTimeDependence"`
	RightTimeDependence float64     `json:"rightTimeDependence"`
	LeftAverageCut      [3]float64  `json:"leftAverageCut"`
	RightAverageCut     [3]float64  `json:"rightAverageCut"`
	GridAcc             [12]float64 `json:"gridAcc"`
	FCAcc               float64     `json:"fcAcc"`
}

// handSums accumulates one saber. Index 0 is pre swing, 1 accuracy, 2 post swing.
type handSums struct {
	cut            [3]float64
	counts         [3]int
	preswing       float64
	postswing      float64
	total          float64
	timeDependence float64
}

type accuracySums struct {
	grid        [12]float64
	gridCounts  [12]int
	left, right handSums
}

func (a *accuracySums) add(note *game.NoteEvent, cfg *Config, mods game.Modifiers) {
	if note.Type != game.Good || nil == note.Cut {
		return
	}
	cut := note.Cut
	before, after, distance := cfg.CutScores(cut, mods)
	total := before + after + distance
	if total <= 0 {
		return
	}

	st := note.Params.ScoringType
	hand := &a.right
	if note.Params.Color == game.Left {
		hand = &a.left
	}

	if !st.IsBurst() {
		index := note.Params.GridIndex()
		a.grid[index] += float64(total)
		a.gridCounts[index]++
	}

	if st != game.SliderTail && st != game.BurstSliderElement && cut.BeforeCutRating < ratingLimit {
		hand.cut[0] += float64(before)
		hand.preswing += cut.BeforeCutRating
		hand.counts[0]++
	}

	if !st.IsBurst() {
		hand.cut[1] += float64(distance)
		hand.total += float64(total)
		hand.timeDependence += math.Abs(cut.CutNormal.Z)
		hand.counts[1]++
	}

	if st != game.SliderHead && !st.IsBurst() && cut.AfterCutRating < ratingLimit {
		hand.cut[2] += float64(after)
		hand.postswing += cut.AfterCutRating
		hand.counts[2]++
	}
}

func (a *accuracySums) finish() AccuracyTracker {
	var t AccuracyTracker
	for i := range a.grid {
		t.GridAcc[i] = average(a.grid[i], a.gridCounts[i])
	}
	for i := 0; i < 3; i++ {
		t.LeftAverageCut[i] = average(a.left.cut[i], a.left.counts[i])
		t.RightAverageCut[i] = average(a.right.cut[i], a.right.counts[i])
	}

	t.AccLeft = average(a.left.total, a.left.counts[1])
	t.AccRight = average(a.right.total, a.right.counts[1])
	t.LeftTimeDependence = average(a.left.timeDependence, a.left.counts[1])
	t.RightTimeDependence = average(a.right.timeDependence, a.right.counts[1])

	t.LeftPreswing = average(a.left.preswing, a.left.counts[0])
	t.RightPreswing = average(a.right.preswing, a.right.counts[0])
	t.AveragePreswing = average(a.left.preswing+a.right.preswing, a.left.counts[0]+a.right.counts[0])

	t.LeftPostswing = average(a.left.postswing, a.left.counts[2])
	t.RightPostswing = average(a.right.postswing, a.right.counts[2])
	t.AveragePostswing = average(a.left.postswing+a.right.postswing, a.left.counts[2]+a.right.counts[2])
	return t
}

// TrackAccuracy folds the good cuts of a replay into per hand and per grid cell averages.
// FCAcc is left for the caller, it comes out of the timeline.
func TrackAccuracy(notes []game.NoteEvent, mods game.Modifiers, cfg Config) AccuracyTracker {
	var sums accuracySums
	for i := range notes {
		sums.add(&notes[i], &cfg, mods)
	}
	return sums.finish()
}
