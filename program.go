package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"git.lost.host/meutraa/beatstat/internal/catalog"
	"git.lost.host/meutraa/beatstat/internal/config"
	"git.lost.host/meutraa/beatstat/internal/game"
	"git.lost.host/meutraa/beatstat/internal/parser"
	"git.lost.host/meutraa/beatstat/internal/pp"
	"git.lost.host/meutraa/beatstat/internal/render"
	"git.lost.host/meutraa/beatstat/internal/score"
	"git.lost.host/meutraa/beatstat/internal/smooth"
	"git.lost.host/meutraa/beatstat/internal/store"
	"git.lost.host/meutraa/beatstat/internal/theme"
	"git.lost.host/meutraa/beatstat/internal/validate"
)

type Program struct {
	Config   config.Config
	Parser   parser.Parser
	Scorer   score.Scorer
	Catalog  catalog.Source // nil without --catalog or --catalog-url
	Store    store.Store    // nil unless the command reads or records history
	Renderer render.Renderer
	PP       *pp.Calculator
	Validate validate.Config

	Out    io.Writer
	Logger *log.Logger
}

// Scored is the outcome of one replay.
type Scored struct {
	File   string
	Replay *game.Replay
	Result *score.Result
	Chart  *game.Chart
	Points *pp.Result
}

func (p *Program) Init(c config.Config) error {
	// Ensure our Default implementations are used as interfaces
	sc := score.DefaultConfig()
	sc.PoodleWindow = c.PoodleWindow

	p.Config = c
	p.Parser = &parser.DefaultParser{}
	p.Scorer = &score.DefaultScorer{Config: sc}
	p.PP = pp.NewCalculator()
	p.Validate = validate.Config{
		MinNoteRatio:    c.MinNoteRatio,
		ExemptModifiers: c.ExemptModifiers.Codes(),
		SaberGrace:      c.SaberGrace,
	}
	if nil == p.Out {
		p.Out = os.Stdout
	}
	p.Renderer = render.NewDefaultRenderer(p.Out, theme.NewDefaultTheme())
	if nil == p.Logger {
		p.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	switch {
	case c.CatalogURL != "":
		p.Catalog = catalog.NewHTTPSource(c.CatalogURL)
	case c.Catalog != "":
		source, err := catalog.NewFileSource(c.Catalog)
		if nil != err {
			return err
		}
		p.Catalog = source
	}

	if c.Record || c.Command == config.History {
		s := &store.DefaultStore{}
		if err := s.Init(c.Database); nil != err {
			return err
		}
		p.Store = s
	}
	return nil
}

func (p *Program) Deinit() {
	if nil != p.Store {
		p.Store.Deinit()
	}
}

func (p *Program) Run() error {
	switch p.Config.Command {
	case config.Score:
		return p.score(p.Config.Replays[0])
	case config.Sanitize:
		return p.sanitize(p.Config.Replays[0])
	case config.PP:
		return p.points()
	case config.Compare:
		return p.compare()
	case config.Batch:
		return p.batch()
	case config.History:
		return p.history()
	}
	return fmt.Errorf("unknown command %q", p.Config.Command)
}

func (p *Program) writeJSON(v interface{}) error {
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Process parses, validates and scores one replay, recording it when asked.
func (p *Program) Process(file string) (*Scored, error) {
	replay, err := p.Parser.Parse(file)
	if nil != err {
		return nil, err
	}
	s := &Scored{File: file, Replay: replay}

	if nil != p.Catalog {
		d := game.NewDifficulty(replay.Info.Difficulty, replay.Info.Mode)
		chart, err := p.Catalog.Chart(replay.Info.Hash, d)
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			p.Logger.Printf("%s: %v, skipping validation", file, err)
		case nil != err:
			return nil, err
		default:
			s.Chart = &chart
			if err := validate.Validate(replay, chart, p.Validate); nil != err {
				return nil, err
			}
		}
	}

	if s.Result, err = p.Scorer.Run(replay); nil != err {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if s.Result.Corrupted {
		p.Logger.Printf("%s: duplicated note events, streak left out", file)
	}
	if nil != s.Chart && s.Chart.Stars > 0 {
		points := p.PP.Compute(s.Result.Totals.Accuracy(), s.Chart.Stars, replay.Info.Modifiers)
		s.Points = &points
	}

	if p.Config.Record && nil != p.Store {
		full := 0.0
		if nil != s.Points {
			full = s.Points.Full
		}
		if err := p.Store.Save(store.NewHistory(replay, s.Result, full)); nil != err {
			return nil, err
		}
	}
	return s, nil
}

func (p *Program) score(file string) error {
	s, err := p.Process(file)
	if nil != err {
		return err
	}
	if p.Config.JSON {
		return p.writeJSON(s.Result.Statistics)
	}
	return p.Renderer.Statistics(p.Out, s.Replay, s.Result, s.Points)
}

func (p *Program) sanitize(file string) error {
	data, err := os.ReadFile(file)
	if nil != err {
		return err
	}
	replay, err := p.Parser.ParseBytes(data)
	if nil != err {
		return err
	}
	_, report := validate.Sanitize(replay, p.Config.PoodleWindow)

	if p.Config.Output != "" {
		out, err := parser.WriteSanitized(data, report)
		if nil != err {
			return err
		}
		if err := os.WriteFile(p.Config.Output, out, 0o644); nil != err {
			return fmt.Errorf("unable to write %s: %w", p.Config.Output, err)
		}
		p.Logger.Printf("wrote %s, %d notes removed", p.Config.Output, len(report.Removed))
	}
	if p.Config.JSON {
		return p.writeJSON(report)
	}
	return p.Renderer.Sanitized(p.Out, report)
}

func (p *Program) points() error {
	result := p.PP.Compute(p.Config.Accuracy, p.Config.Stars, p.Config.Modifiers)
	if p.Config.JSON {
		return p.writeJSON(result)
	}
	_, err := fmt.Fprintf(p.Out, "%.2fpp (raw %.2f, modifiers %+.2f)\n", result.Full, result.Raw, result.Bonus)
	return err
}

func (p *Program) compare() error {
	actual, err := parser.ParseSamples(p.Config.Actual)
	if nil != err {
		return err
	}
	predicted, err := parser.ParseSamples(p.Config.Predicted)
	if nil != err {
		return err
	}
	c := smooth.Compare(actual, predicted, p.Config.Resolution, p.Config.Smooth)
	if p.Config.JSON {
		return p.writeJSON(c)
	}
	return p.Renderer.Comparison(p.Out, c)
}

func (p *Program) history() error {
	histories, err := p.Store.Load(p.Config.Hash, p.Config.Difficulty)
	if nil != err {
		return err
	}
	if p.Config.JSON {
		return p.writeJSON(histories)
	}
	if len(histories) == 0 {
		p.Logger.Printf("no plays recorded for %s %s", p.Config.Hash, p.Config.Difficulty.Name)
	}
	return p.Renderer.Histories(p.Out, histories)
}
