package store

import (
	"time"

	"github.com/google/uuid"

	"git.lost.host/meutraa/beatstat/internal/game"
	"git.lost.host/meutraa/beatstat/internal/score"
)

// History is one scored play of a chart.
type History struct {
	ID         uuid.UUID
	Sum        string // chart key, see hashChart
	PlayerID   string
	Player     string
	Difficulty game.Difficulty
	Score      int
	MaxScore   int
	Accuracy   float64
	PP         float64
	Corrupted  bool
	PlayedAt   time.Time
	Statistics *score.Statistics
}

type Store interface {
	Init(dsn string) error
	Deinit()
	Save(h *History) error
	Load(hash string, difficulty game.Difficulty) ([]History, error)
}
