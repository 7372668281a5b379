package testdata

import (
	_ "embed"
	"fmt"

	"git.lost.host/meutraa/beatstat/internal/game"
)

// ReplayJSON is a short decoded replay with a bad cut, a miss, a wall and a pause.
//
//go:embed replay.json
var ReplayJSON []byte

// Cut builds a cut with the given ratings and distance from the note centre.
func Cut(before, after, distance float64) *game.CutInfo {
	return &game.CutInfo{
		SpeedOK:             true,
		DirectionOK:         true,
		SaberTypeOK:         true,
		BeforeCutRating:     before,
		AfterCutRating:      after,
		CutDistanceToCenter: distance,
		CutNormal:           game.Vector3{X: 0, Y: 1, Z: 0},
	}
}

// NoteID encodes note parameters the way replay recorders do.
func NoteID(st game.ScoringType, line, layer int, color game.ColorType, dir int) int {
	return int(st)*10000 + line*1000 + layer*100 + int(color)*10 + dir
}

// Note panics on invalid input, fixtures are expected to be valid.
func Note(id int, t game.EventType, at float64, cut *game.CutInfo) game.NoteEvent {
	if nil != cut && t == game.Good {
		c := *cut
		c.SaberType = game.SaberType(game.DecodeNoteID(id).Color)
		cut = &c
	}
	note, err := game.NewNoteEvent(id, t, at-1, at, cut)
	if nil != err {
		panic(fmt.Sprintf("fixture note %d: %v", id, err))
	}
	return note
}

// PerfectReplay has n perfect cuts one second apart, alternating hands and lanes.
func PerfectReplay(n int) *game.Replay {
	r := &game.Replay{
		Info: game.ReplayInfo{
			PlayerName: "tester",
			Hash:       "ABCDEF",
			Difficulty: "ExpertPlus",
			Mode:       "Standard",
			Height:     1.7,
		},
	}
	for i := 0; i < n; i++ {
		color := game.ColorType(i % 2)
		id := NoteID(game.Normal, i%4, (i/4)%3, color, 1)
		r.Notes = append(r.Notes, Note(id, game.Good, float64(i+1), Cut(1, 1, 0)))
	}
	r.EndTime = float64(n) + 1.5
	return r
}
