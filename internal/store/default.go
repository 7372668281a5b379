package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"git.lost.host/meutraa/beatstat/internal/game"
	"git.lost.host/meutraa/beatstat/internal/score"
)

const DefaultDSN = "./scores.db"

type DefaultStore struct {
	db     *sql.DB
	driver string
}

// driver picks lib/pq for postgres urls, every other dsn is a sqlite path.
func driver(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "postgres"
	}
	return "sqlite3"
}

// rebind rewrites ? placeholders into the $n form postgres expects.
func rebind(driver, query string) string {
	if driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$")
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *DefaultStore) Init(dsn string) error {
	if dsn == "" {
		dsn = DefaultDSN
	}
	s.driver = driver(dsn)
	db, err := sql.Open(s.driver, dsn)
	if nil != err {
		return fmt.Errorf("unable to open history: %w", err)
	}
	if err := db.Ping(); nil != err {
		db.Close()
		return fmt.Errorf("unable to reach history: %w", err)
	}

	if s.driver == "sqlite3" {
		// sqlite allows one writer, batch workers share this handle.
		db.SetMaxOpenConns(1)
	}

	initStatement := `
	create table if not exists scores
	  (
		  id text not null primary key,
		  sum text not null,
		  player_id text,
		  player text,
		  difficulty text,
		  mode text,
		  score integer,
		  max_score integer,
		  accuracy double precision,
		  pp double precision,
		  corrupted integer,
		  played_at bigint,
		  statistics text
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return fmt.Errorf("unable to create scores table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func hashChart(hash string, d game.Difficulty) string {
	key := strings.ToUpper(hash) + "/" + d.Name + "/" + d.Mode
	sum := sha256.Sum256([]byte(key))
	return base64.StdEncoding.EncodeToString(sum[:])
}

var errClosed = errors.New("history is not open")

// Save assigns an id and play time when missing and writes the play.
func (s *DefaultStore) Save(h *History) error {
	if nil == s.db {
		return errClosed
	}
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.PlayedAt.IsZero() {
		h.PlayedAt = time.Now()
	}

	data, err := json.Marshal(h.Statistics)
	if nil != err {
		return fmt.Errorf("unable to marshal statistics: %w", err)
	}
	corrupted := 0
	if h.Corrupted {
		corrupted = 1
	}

	_, err = s.db.Exec(rebind(s.driver, `insert into scores
		(id, sum, player_id, player, difficulty, mode, score, max_score, accuracy, pp, corrupted, played_at, statistics)
		values(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		h.ID.String(), h.Sum, h.PlayerID, h.Player, h.Difficulty.Name, h.Difficulty.Mode,
		h.Score, h.MaxScore, h.Accuracy, h.PP, corrupted, h.PlayedAt.UnixNano(), string(data),
	)
	if nil != err {
		return fmt.Errorf("unable to save score: %w", err)
	}
	return nil
}

// Load returns every play of the chart, oldest first.
func (s *DefaultStore) Load(hash string, difficulty game.Difficulty) ([]History, error) {
	if nil == s.db {
		return nil, errClosed
	}
	histories := []History{}
	rows, err := s.db.Query(rebind(s.driver, `select
		id, sum, player_id, player, difficulty, mode, score, max_score, accuracy, pp, corrupted, played_at, statistics
		from scores where sum = ? order by played_at`), hashChart(hash, difficulty))
	if nil != err {
		return nil, fmt.Errorf("unable to load scores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h History
		var id, stats string
		var corrupted int
		var playedAt int64
		if err := rows.Scan(
			&id, &h.Sum, &h.PlayerID, &h.Player, &h.Difficulty.Name, &h.Difficulty.Mode,
			&h.Score, &h.MaxScore, &h.Accuracy, &h.PP, &corrupted, &playedAt, &stats,
		); nil != err {
			return nil, fmt.Errorf("unable to scan score: %w", err)
		}
		if h.ID, err = uuid.Parse(id); nil != err {
			return nil, fmt.Errorf("score %q has an invalid id: %w", id, err)
		}
		h.Corrupted = corrupted != 0
		h.PlayedAt = time.Unix(0, playedAt)
		h.Statistics = &score.Statistics{}
		if err := json.Unmarshal([]byte(stats), h.Statistics); nil != err {
			return nil, fmt.Errorf("unable to unmarshal statistics of %s: %w", id, err)
		}
		histories = append(histories, h)
	}
	return histories, rows.Err()
}

// NewHistory fills a history row from a scored replay.
func NewHistory(r *game.Replay, result *score.Result, pp float64) *History {
	d := game.NewDifficulty(r.Info.Difficulty, r.Info.Mode)
	return &History{
		Sum:        hashChart(r.Info.Hash, d),
		PlayerID:   r.Info.PlayerID,
		Player:     r.Info.PlayerName,
		Difficulty: d,
		Score:      result.Totals.Score,
		MaxScore:   result.Totals.MaxScore,
		Accuracy:   result.Totals.Accuracy(),
		PP:         pp,
		Corrupted:  result.Corrupted,
		Statistics: result.Statistics,
	}
}
