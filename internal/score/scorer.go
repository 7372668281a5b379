package score

import (
	"errors"

	"git.lost.host/meutraa/beatstat/internal/game"
)

// ErrMalformed wraps every input problem that prevents scoring.
var ErrMalformed = errors.New("malformed replay")

type Scorer interface {
	// Run scores a replay, keeping the intermediate timeline around.
	Run(replay *game.Replay) (*Result, error)

	// Statistics scores a replay.
	Statistics(replay *game.Replay) (*Statistics, error)
}

type Result struct {
	Statistics *Statistics
	Timeline   []NoteStruct
	Totals     Totals
	Corrupted  bool
}
