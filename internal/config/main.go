package config

import (
	"errors"
	"fmt"
	"runtime"

	"gopkg.in/alecthomas/kingpin.v2"

	"git.lost.host/meutraa/beatstat/internal/game"
	"git.lost.host/meutraa/beatstat/internal/score"
	"git.lost.host/meutraa/beatstat/internal/smooth"
	"git.lost.host/meutraa/beatstat/internal/validate"
)

const Version = "0.3.0"

// Commands
const (
	Score    = "score"
	Sanitize = "sanitize"
	PP       = "pp"
	Compare  = "compare"
	Batch    = "batch"
	History  = "history"
)

type Config struct {
	Command string

	// Shared
	Database   string
	Catalog    string
	CatalogURL string
	JSON       bool

	// Scoring and validation
	Replays         []string
	Record          bool
	PoodleWindow    float64
	MinNoteRatio    float64
	ExemptModifiers game.Modifiers
	SaberGrace      float64

	// sanitize
	Output string

	// pp
	Accuracy  float64
	Stars     float64
	Modifiers game.Modifiers

	// compare
	Actual, Predicted string
	Resolution        int
	Smooth            smooth.Params

	// batch
	Workers     int
	MetricsAddr string

	// history
	Hash       string
	Difficulty game.Difficulty
}

var ErrNoCommand = errors.New("no command given, see --help")

// Parse builds the configuration from command line arguments, without the
// program name. It never exits, --help and --version return an error
// after writing their output.
func Parse(args []string) (Config, error) {
	var c Config
	if len(args) == 0 {
		return c, ErrNoCommand
	}
	app := kingpin.New("beatstat", "Replay scoring and statistics.")
	app.Version(Version)
	app.Terminate(nil)

	app.Flag("db", "History database, a sqlite path or postgres:// url").Default("./scores.db").Envar("BEATSTAT_DB").StringVar(&c.Database)
	app.Flag("catalog", "Chart catalog json file").Short('c').Envar("BEATSTAT_CATALOG").StringVar(&c.Catalog)
	app.Flag("catalog-url", "Chart catalog service").Envar("BEATSTAT_CATALOG_URL").StringVar(&c.CatalogURL)
	app.Flag("json", "Write json instead of a report").Short('j').BoolVar(&c.JSON)

	window := fmt.Sprint(score.DefaultPoodleWindow)
	ratio := fmt.Sprint(validate.DefaultMinNoteRatio)
	grace := fmt.Sprint(validate.DefaultSaberGrace)
	var replay, exempt, modifiers string
	addScoring := func(cmd *kingpin.CmdClause) {
		cmd.Flag("window", "Gap under which two hits on one note are duplicates (s)").Default(window).Short('w').Float64Var(&c.PoodleWindow)
		cmd.Flag("min-notes", "Minimum ratio of played notes").Default(ratio).Float64Var(&c.MinNoteRatio)
		cmd.Flag("exempt", "Modifiers exempt from the note count check").Default("NF").StringVar(&exempt)
		cmd.Flag("saber-grace", "Seconds before the end where wrong saber hits are ignored").Default(grace).Float64Var(&c.SaberGrace)
	}

	scoreCmd := app.Command(Score, "Score a replay")
	scoreCmd.Arg("replay", "Replay json").Required().ExistingFileVar(&replay)
	scoreCmd.Flag("record", "Save the result to the history database").Short('r').BoolVar(&c.Record)
	addScoring(scoreCmd)

	sanitizeCmd := app.Command(Sanitize, "Remove duplicated note events from a replay")
	sanitizeCmd.Arg("replay", "Replay json").Required().ExistingFileVar(&replay)
	sanitizeCmd.Flag("output", "Where to write the sanitized replay").Short('o').StringVar(&c.Output)
	sanitizeCmd.Flag("window", "Gap under which two hits on one note are duplicates (s)").Default(window).Short('w').Float64Var(&c.PoodleWindow)

	ppCmd := app.Command(PP, "Performance points for an accuracy")
	ppCmd.Arg("accuracy", "Accuracy in [0,1]").Required().Float64Var(&c.Accuracy)
	ppCmd.Arg("stars", "Chart star rating").Required().Float64Var(&c.Stars)
	ppCmd.Flag("modifiers", "Modifier codes, e.g. FS,GN").Short('m').StringVar(&modifiers)

	compareCmd := app.Command(Compare, "Compare smoothed actual and predicted accuracy curves")
	compareCmd.Arg("actual", "Actual samples json").Required().ExistingFileVar(&c.Actual)
	compareCmd.Arg("predicted", "Predicted samples json").Required().ExistingFileVar(&c.Predicted)
	compareCmd.Flag("resolution", "Points on the smoothed curve").Default("50").Short('n').IntVar(&c.Resolution)
	compareCmd.Flag("bell-width", "Kernel width as a fraction of the duration").Default(fmt.Sprint(smooth.DefaultParams().BellWidthFraction)).Float64Var(&c.Smooth.BellWidthFraction)
	compareCmd.Flag("steepness", "Kernel steepness power").Default(fmt.Sprint(smooth.DefaultParams().SteepnessPower)).Float64Var(&c.Smooth.SteepnessPower)

	batchCmd := app.Command(Batch, "Score many replays")
	batchCmd.Arg("replays", "Replay json files").Required().ExistingFilesVar(&c.Replays)
	batchCmd.Flag("workers", "Concurrent scorers").Default(fmt.Sprint(runtime.NumCPU())).IntVar(&c.Workers)
	batchCmd.Flag("metrics-addr", "Serve prometheus metrics on this address").Envar("BEATSTAT_METRICS_ADDR").StringVar(&c.MetricsAddr)
	batchCmd.Flag("record", "Save results to the history database").Short('r').BoolVar(&c.Record)
	addScoring(batchCmd)

	var difficulty, mode string
	historyCmd := app.Command(History, "List recorded plays of a chart")
	historyCmd.Arg("hash", "Song hash").Required().StringVar(&c.Hash)
	historyCmd.Arg("difficulty", "Difficulty name").Default("ExpertPlus").StringVar(&difficulty)
	historyCmd.Arg("mode", "Characteristic").Default("Standard").StringVar(&mode)

	command, err := app.Parse(args)
	if nil != err {
		return c, err
	}
	if command == "" {
		return c, ErrNoCommand
	}
	c.Command = command
	if replay != "" {
		c.Replays = []string{replay}
	}
	c.ExemptModifiers = game.ParseModifiers(exempt)
	c.Modifiers = game.ParseModifiers(modifiers)
	c.Difficulty = game.NewDifficulty(difficulty, mode)

	switch {
	case c.PoodleWindow < 0:
		return c, fmt.Errorf("window must not be negative, got %v", c.PoodleWindow)
	case c.Workers < 0:
		return c, fmt.Errorf("workers must not be negative, got %v", c.Workers)
	case c.Command == Compare && c.Resolution < 1:
		return c, fmt.Errorf("resolution must be at least 1, got %v", c.Resolution)
	}
	return c, nil
}
