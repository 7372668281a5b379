package catalog

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"git.lost.host/meutraa/beatstat/internal/game"
)

var ErrNotFound = errors.New("chart not found")

// Source looks up leaderboard information for a played difficulty.
type Source interface {
	Chart(hash string, difficulty game.Difficulty) (game.Chart, error)
}

// chart decodes the catalog json form of a chart:
// {"hash":"..","difficulty":"Expert","mode":"Standard","notes":812,"stars":7.1,"status":"ranked"}
func chart(v gjson.Result) game.Chart {
	return game.Chart{
		Hash:       strings.ToUpper(v.Get("hash").String()),
		Difficulty: game.NewDifficulty(v.Get("difficulty").String(), v.Get("mode").String()),
		NoteCount:  int(v.Get("notes").Int()),
		Stars:      v.Get("stars").Float(),
		Status:     game.ParseStatus(v.Get("status").String()),
	}
}

func matches(c game.Chart, hash string, d game.Difficulty) bool {
	return strings.EqualFold(c.Hash, hash) &&
		strings.EqualFold(c.Difficulty.Name, d.Name) &&
		strings.EqualFold(c.Difficulty.Mode, d.Mode)
}
