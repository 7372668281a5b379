package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"git.lost.host/meutraa/beatstat/internal/game"
	"git.lost.host/meutraa/beatstat/internal/pp"
	"git.lost.host/meutraa/beatstat/internal/score"
	"git.lost.host/meutraa/beatstat/internal/smooth"
	"git.lost.host/meutraa/beatstat/internal/store"
	"git.lost.host/meutraa/beatstat/internal/theme"
	"git.lost.host/meutraa/beatstat/internal/validate"
)

type DefaultRenderer struct {
	Theme theme.Theme
	// Colour enables 24 bit ANSI colour escapes.
	Colour bool

	buffer strings.Builder
}

// NewDefaultRenderer colours output only when w is a terminal.
func NewDefaultRenderer(w io.Writer, th theme.Theme) *DefaultRenderer {
	r := &DefaultRenderer{Theme: th}
	if f, ok := w.(*os.File); ok {
		r.Colour = term.IsTerminal(int(f.Fd()))
	}
	return r
}

func (r *DefaultRenderer) Fill(label string, value interface{}) {
	r.buffer.WriteString(fmt.Sprintf("%20s:  %v\n", label, value))
}

func (r *DefaultRenderer) FillColor(label string, c theme.Color, value interface{}) {
	if !r.Colour {
		r.Fill(label, value)
		return
	}
	r.buffer.WriteString(fmt.Sprintf("%20s:  ", label))
	r.buffer.WriteString("\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(fmt.Sprint(value))
	r.buffer.WriteString("\033[0m\n")
}

func (r *DefaultRenderer) flush(w io.Writer) error {
	_, err := io.WriteString(w, r.buffer.String())
	r.buffer.Reset()
	return err
}

var (
	ahead  = theme.Color{R: 0, G: 236, B: 128}
	behind = theme.Color{R: 236, G: 30, B: 0}
)

func percent(v float64) string {
	return fmt.Sprintf("%6.2f%%", 100*v)
}

func (r *DefaultRenderer) Statistics(w io.Writer, replay *game.Replay, result *score.Result, points *pp.Result) error {
	stats := result.Statistics
	acc := result.Totals.Accuracy()
	grade := r.Theme.Grade(acc)

	r.Fill("Player", replay.Info.PlayerName)
	r.Fill("Song", fmt.Sprintf("%s (%s %s)", replay.Info.SongName, replay.Info.Difficulty, replay.Info.Mode))
	if !replay.Info.Modifiers.Empty() {
		r.Fill("Modifiers", replay.Info.Modifiers)
	}
	r.Fill("Score", fmt.Sprintf("%d / %d", result.Totals.Score, result.Totals.MaxScore))
	r.FillColor("Accuracy", r.Theme.GradeColor(grade), fmt.Sprintf("%s  %s", percent(acc), grade.Name))
	r.Fill("FC accuracy", percent(result.Totals.FCAccuracy))
	if nil != points {
		r.Fill("PP", fmt.Sprintf("%.2f (raw %.2f, modifiers %+.2f)", points.Full, points.Raw, points.Bonus))
	}

	a := stats.AccuracyTracker
	r.FillColor("Left", r.Theme.HandColor(game.Left), fmt.Sprintf("%6.2f  %5.2f / %5.2f / %5.2f",
		a.AccLeft, a.LeftAverageCut[0], a.LeftAverageCut[1], a.LeftAverageCut[2]))
	r.FillColor("Right", r.Theme.HandColor(game.Right), fmt.Sprintf("%6.2f  %5.2f / %5.2f / %5.2f",
		a.AccRight, a.RightAverageCut[0], a.RightAverageCut[1], a.RightAverageCut[2]))
	r.Fill("Swing", fmt.Sprintf("pre %.3f  post %.3f", a.AveragePreswing, a.AveragePostswing))

	h := stats.HitTracker
	r.Fill("Max combo", h.MaxCombo)
	if nil == h.MaxStreak {
		r.Fill("Max streak", "n/a (duplicated note events)")
	} else {
		r.Fill("Max streak", *h.MaxStreak)
	}
	r.Fill("Misses", fmt.Sprintf("%d / %d", h.LeftMiss, h.RightMiss))
	r.Fill("Bad cuts", fmt.Sprintf("%d / %d", h.LeftBadCuts, h.RightBadCuts))
	r.Fill("Bombs", fmt.Sprintf("%d / %d", h.LeftBombs, h.RightBombs))
	r.Fill("Timing", fmt.Sprintf("%+.4f / %+.4f", h.LeftTiming, h.RightTiming))

	win := stats.WinTracker
	r.Fill("Full combo", win.FullCombo)
	r.Fill("Pauses", fmt.Sprintf("%d (%.0fs)", win.PauseCount, win.TotalPauseDuration))
	r.Fill("Graph", r.Theme.Sparkline(stats.ScoreGraphTracker.Graph))
	return r.flush(w)
}

func (r *DefaultRenderer) Sanitized(w io.Writer, report validate.Report) error {
	r.Fill("Removed", len(report.Removed))
	for _, removal := range report.Removed {
		r.Fill(strconv.Itoa(removal.NoteID), fmt.Sprintf("%.4f (kept %.4f)", removal.EventTime, removal.KeptTime))
	}
	return r.flush(w)
}

func (r *DefaultRenderer) Comparison(w io.Writer, c smooth.Comparison) error {
	r.Fill("Points", len(c.Delta))
	r.Fill("Mean |delta|", fmt.Sprintf("%.3f", c.MeanAbsDelta))
	for _, d := range c.Delta {
		col := ahead
		if d.Value < 0 {
			col = behind
		}
		r.FillColor(fmt.Sprintf("%.2fs", d.Time), col, fmt.Sprintf("%+7.3f", d.Value))
	}
	return r.flush(w)
}

func (r *DefaultRenderer) Histories(w io.Writer, histories []store.History) error {
	for _, h := range histories {
		grade := r.Theme.Grade(h.Accuracy)
		r.FillColor(h.PlayedAt.Format("2006-01-02 15:04"), r.Theme.GradeColor(grade),
			fmt.Sprintf("%-16s %8d  %s  %-2s  %7.2fpp", h.Player, h.Score, percent(h.Accuracy), grade.Name, h.PP))
	}
	return r.flush(w)
}
