package render

import (
	"io"

	"git.lost.host/meutraa/beatstat/internal/game"
	"git.lost.host/meutraa/beatstat/internal/pp"
	"git.lost.host/meutraa/beatstat/internal/score"
	"git.lost.host/meutraa/beatstat/internal/smooth"
	"git.lost.host/meutraa/beatstat/internal/store"
	"git.lost.host/meutraa/beatstat/internal/validate"
)

type Renderer interface {
	// Statistics writes the scoring report, points may be nil when the chart is unknown.
	Statistics(w io.Writer, replay *game.Replay, result *score.Result, points *pp.Result) error
	Sanitized(w io.Writer, report validate.Report) error
	Comparison(w io.Writer, c smooth.Comparison) error
	Histories(w io.Writer, histories []store.History) error
}
