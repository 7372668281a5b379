package score

type HitTracker struct {
	MaxCombo int `json:"maxCombo"`
	// MaxStreak is nil when the replay looked corrupted.
	MaxStreak    *int    `json:"maxStreak"`
	LeftTiming   float64 `json:"leftTiming"`
	RightTiming  float64 `json:"rightTiming"`
	LeftMiss     int     `json:"leftMiss"`
	RightMiss    int     `json:"rightMiss"`
	LeftBadCuts  int     `json:"leftBadCuts"`
	RightBadCuts int     `json:"rightBadCuts"`
	LeftBombs    int     `json:"leftBombs"`
	RightBombs   int     `json:"rightBombs"`
}

type WinTracker struct {
	Won                bool    `json:"won"`
	EndTime            float64 `json:"endTime"`
	PauseCount         int     `json:"nbOfPause"`
	TotalPauseDuration float64 `json:"totalPauseDuration"`
	JumpDistance       float64 `json:"jumpDistance"`
	AverageHeight      float64 `json:"averageHeight"`
	TotalScore         int     `json:"totalScore"`
	MaxScore           int     `json:"maxScore"`
	FullCombo          bool    `json:"fullCombo"`
}

type ScoreGraphTracker struct {
	Graph []float64 `json:"graph"`
}

// Statistics is everything computed from one replay.
type Statistics struct {
	AccuracyTracker   AccuracyTracker   `json:"accuracyTracker"`
	HitTracker        HitTracker        `json:"hitTracker"`
	WinTracker        WinTracker        `json:"winTracker"`
	ScoreGraphTracker ScoreGraphTracker `json:"scoreGraphTracker"`
}

// Accuracy is the raw score over the max score.
func (s *Statistics) Accuracy() float64 {
	if s.WinTracker.MaxScore == 0 {
		return 0
	}
	return float64(s.WinTracker.TotalScore) / float64(s.WinTracker.MaxScore)
}
