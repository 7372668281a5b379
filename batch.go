package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"git.lost.host/meutraa/beatstat/internal/metrics"
	"git.lost.host/meutraa/beatstat/internal/score"
	"git.lost.host/meutraa/beatstat/internal/validate"
)

// BatchResult keeps the input position so results are reported in order.
type BatchResult struct {
	Index    int
	File     string
	Scored   *Scored
	Err      error
	Duration time.Duration
}

func outcome(err error) string {
	var rejection *validate.RejectionError
	switch {
	case nil == err:
		return metrics.Scored
	case errors.Is(err, score.ErrMalformed):
		return metrics.Malformed
	case errors.As(err, &rejection):
		return metrics.Rejected
	}
	return metrics.Failed
}

// RunBatch scores files on workers goroutines. Every replay is independent,
// a failure is reported in its result and never stops the others.
func (p *Program) RunBatch(ctx context.Context, files []string, workers int, m *metrics.Metrics) []BatchResult {
	if workers < 1 {
		workers = 1
	}
	results := make([]BatchResult, len(files))
	jobs := make(chan int)

	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				start := time.Now()
				s, err := p.Process(files[i])
				results[i] = BatchResult{Index: i, File: files[i], Scored: s, Err: err, Duration: time.Since(start)}
				if nil != m {
					acc, corrupted := 0.0, false
					if nil != s {
						acc, corrupted = s.Result.Totals.Accuracy(), s.Result.Corrupted
					}
					m.Observe(outcome(err), results[i].Duration, acc, corrupted)
				}
			}
		}()
	}

	for i := range files {
		if nil != ctx.Err() {
			results[i] = BatchResult{Index: i, File: files[i], Err: ctx.Err()}
			continue
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

type batchLine struct {
	File     string  `json:"file"`
	Score    int     `json:"score,omitempty"`
	MaxScore int     `json:"maxScore,omitempty"`
	Accuracy float64 `json:"accuracy,omitempty"`
	PP       float64 `json:"pp,omitempty"`
	Error    string  `json:"error,omitempty"`
}

func (p *Program) batch() error {
	var m *metrics.Metrics
	if p.Config.MetricsAddr != "" {
		m = metrics.New()
		server := m.Serve(p.Config.MetricsAddr, p.Logger)
		defer server.Close()
	}

	results := p.RunBatch(context.Background(), p.Config.Replays, p.Config.Workers, m)

	lines := make([]batchLine, 0, len(results))
	failed := 0
	for _, r := range results {
		line := batchLine{File: r.File}
		if nil != r.Err {
			failed++
			line.Error = r.Err.Error()
			p.Logger.Println(r.Err)
		} else {
			line.Score = r.Scored.Result.Totals.Score
			line.MaxScore = r.Scored.Result.Totals.MaxScore
			line.Accuracy = r.Scored.Result.Totals.Accuracy()
			if nil != r.Scored.Points {
				line.PP = r.Scored.Points.Full
			}
		}
		lines = append(lines, line)
	}
	p.Logger.Printf("scored %d of %d replays", len(results)-failed, len(results))
	return p.writeJSON(lines)
}
