package game

type WallEvent struct {
	WallID    int
	Energy    float64
	Time      float64
	SpawnTime float64
}

type PauseEvent struct {
	Duration int64 // seconds
	Time     float64
}

type ReplayInfo struct {
	Version      string
	GameVersion  string
	Timestamp    string
	PlayerID     string
	PlayerName   string
	Platform     string
	TrackingSys  string
	HMD          string
	Controller   string
	Hash         string
	SongName     string
	Mapper       string
	Difficulty   string
	Mode         string
	Environment  string
	Modifiers    Modifiers
	JumpDistance float64
	LeftHanded   bool
	Height       float64
	StartTime    float64
	FailTime     float64
	Speed        float64
	Score        int
}

type Replay struct {
	Info   ReplayInfo
	Notes  []NoteEvent
	Walls  []WallEvent
	Pauses []PauseEvent

	// EndTime is the time of the last recorded frame.
	EndTime float64
}

// Duration is EndTime, falling back to the latest event when no frames were decoded.
func (r *Replay) Duration() float64 {
	if r.EndTime > 0 {
		return r.EndTime
	}
	end := 0.0
	for _, n := range r.Notes {
		if n.EventTime > end {
			end = n.EventTime
		}
	}
	for _, w := range r.Walls {
		if w.Time > end {
			end = w.Time
		}
	}
	return end
}

// Failed reports whether the player ran out of energy.
func (r *Replay) Failed() bool {
	return r.Info.FailTime > 0
}

// Copy returns a replay whose event slices can be modified independently.
func (r *Replay) Copy() *Replay {
	c := *r
	c.Notes = append([]NoteEvent(nil), r.Notes...)
	c.Walls = append([]WallEvent(nil), r.Walls...)
	c.Pauses = append([]PauseEvent(nil), r.Pauses...)
	return &c
}
