package game

import "strings"

type Status int

const (
	Unranked Status = iota
	Nominated
	Qualified
	Ranked
	Unrankable
	Outdated
	Inevent
)

var statusNames = map[string]Status{
	"unranked":   Unranked,
	"nominated":  Nominated,
	"qualified":  Qualified,
	"ranked":     Ranked,
	"unrankable": Unrankable,
	"outdated":   Outdated,
	"inevent":    Inevent,
}

func ParseStatus(s string) Status {
	if st, ok := statusNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st
	}
	return Unranked
}

func (s Status) String() string {
	for name, st := range statusNames {
		if st == s {
			return name
		}
	}
	return "unranked"
}

// Checked reports chart states where the saber colour check is enforced.
func (s Status) Checked() bool {
	return s == Ranked || s == Qualified || s == Nominated
}

// Chart is what the leaderboard catalog knows about a difficulty.
type Chart struct {
	Hash       string
	Difficulty Difficulty
	NoteCount  int
	Stars      float64
	Status     Status
}
