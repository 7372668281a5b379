package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/levigross/grequests"
	"github.com/tidwall/gjson"

	"git.lost.host/meutraa/beatstat/internal/game"
)

const DefaultTimeout = 10 * time.Second

// HTTPSource asks a leaderboard service at GET <base>/chart/<hash>/<difficulty>/<mode>.
type HTTPSource struct {
	Base      string
	Timeout   time.Duration
	UserAgent string
}

func NewHTTPSource(base string) *HTTPSource {
	return &HTTPSource{
		Base:      strings.TrimRight(base, "/"),
		Timeout:   DefaultTimeout,
		UserAgent: "beatstat",
	}
}

func (s *HTTPSource) url(hash string, d game.Difficulty) string {
	return fmt.Sprintf("%s/chart/%s/%s/%s",
		s.Base,
		url.PathEscape(hash),
		url.PathEscape(d.Name),
		url.PathEscape(d.Mode),
	)
}

func (s *HTTPSource) Chart(hash string, difficulty game.Difficulty) (game.Chart, error) {
	return s.ChartContext(context.Background(), hash, difficulty)
}

func (s *HTTPSource) ChartContext(ctx context.Context, hash string, difficulty game.Difficulty) (game.Chart, error) {
	difficulty = game.NewDifficulty(difficulty.Name, difficulty.Mode)
	resp, err := grequests.Get(s.url(hash, difficulty), grequests.FromRequestOptions(&grequests.RequestOptions{
		Context:        ctx,
		RequestTimeout: s.Timeout,
		UserAgent:      s.UserAgent,
		Headers:        map[string]string{"Accept": "application/json"},
	}))
	if nil != err {
		return game.Chart{}, fmt.Errorf("unable to query catalog: %w", err)
	}
	defer resp.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return game.Chart{}, fmt.Errorf("%s %s %s: %w", hash, difficulty.Name, difficulty.Mode, ErrNotFound)
	case !resp.Ok:
		return game.Chart{}, fmt.Errorf("catalog responded %d", resp.StatusCode)
	}

	body := resp.Bytes()
	if !gjson.ValidBytes(body) {
		return game.Chart{}, errors.New("catalog response is not valid json")
	}
	c := chart(gjson.ParseBytes(body))
	// The service may omit the key fields, they are known from the request.
	if c.Hash == "" {
		c.Hash = strings.ToUpper(hash)
	}
	if c.Difficulty.Name == "" {
		c.Difficulty = difficulty
	}
	return c, nil
}
