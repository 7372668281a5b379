package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.lost.host/meutraa/beatstat/internal/config"
	"git.lost.host/meutraa/beatstat/internal/metrics"
	"git.lost.host/meutraa/beatstat/internal/score"
	"git.lost.host/meutraa/beatstat/internal/testdata"
	"git.lost.host/meutraa/beatstat/internal/validate"
)

const catalogJSON = `[
	{"hash": "ABCDEF0123", "difficulty": "Expert", "mode": "Standard", "notes": 6, "stars": 7.25, "status": "ranked"}
]`

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	if err := os.WriteFile(file, []byte(content), 0o600); nil != err {
		t.Fatal(err)
	}
	return file
}

func program(t *testing.T, args ...string) (*Program, *bytes.Buffer) {
	t.Helper()
	c, err := config.Parse(args)
	if nil != err {
		t.Fatalf("unable to parse %v: %v", args, err)
	}
	out := &bytes.Buffer{}
	p := &Program{Out: out, Logger: log.New(io.Discard, "", 0)}
	if err := p.Init(c); nil != err {
		t.Fatalf("unable to init: %v", err)
	}
	t.Cleanup(p.Deinit)
	return p, out
}

func TestScoreRecordHistory(t *testing.T) {
	dir := t.TempDir()
	replay := write(t, dir, "replay.json", string(testdata.ReplayJSON))
	catalog := write(t, dir, "charts.json", catalogJSON)
	db := filepath.Join(dir, "scores.db")

	p, out := program(t, "--db", db, "--catalog", catalog, "--json", "score", "--record", replay)
	if err := p.Run(); nil != err {
		t.Fatalf("unexpected error: %v", err)
	}
	var stats score.Statistics
	if err := json.Unmarshal(out.Bytes(), &stats); nil != err {
		t.Fatalf("output is not statistics json: %v", err)
	}
	if stats.WinTracker.TotalScore != 368 || stats.WinTracker.MaxScore != 600 {
		t.Errorf("WinTracker = %+v", stats.WinTracker)
	}

	p, out = program(t, "--db", db, "history", "ABCDEF0123", "Expert")
	if err := p.Run(); nil != err {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "tester") || !strings.Contains(out.String(), "pp") {
		t.Log(out.String())
		t.Fail()
	}
}

func TestScoreRejected(t *testing.T) {
	dir := t.TempDir()
	replay := write(t, dir, "replay.json", string(testdata.ReplayJSON))
	catalog := write(t, dir, "charts.json", strings.Replace(catalogJSON, `"notes": 6`, `"notes": 100`, 1))

	p, _ := program(t, "--catalog", catalog, "score", replay)
	err := p.Run()
	if !errors.Is(err, validate.ErrTooFewNotes) {
		t.Errorf("err = %v, want ErrTooFewNotes", err)
	}
}

func TestSanitizeOutput(t *testing.T) {
	dir := t.TempDir()
	doc := `{"info":{"hash":"x"},"notes":[` +
		`{"noteID":30000,"eventTime":1,"eventType":2},` +
		`{"noteID":30000,"eventTime":1.002,"eventType":2}]}`
	replay := write(t, dir, "replay.json", doc)
	output := filepath.Join(dir, "clean.json")

	p, out := program(t, "sanitize", replay, "-o", output)
	if err := p.Run(); nil != err {
		t.Fatalf("unexpected error: %v", err)
	}
	clean, err := p.Parser.Parse(output)
	if nil != err {
		t.Fatalf("unable to parse sanitized replay: %v", err)
	}
	if len(clean.Notes) != 1 {
		t.Errorf("%d notes left, want 1", len(clean.Notes))
	}
	if !strings.Contains(out.String(), "Removed:  1") {
		t.Log(out.String())
		t.Fail()
	}
}

func TestPoints(t *testing.T) {
	p, out := program(t, "pp", "0.9", "6")
	if err := p.Run(); nil != err {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "202.91pp") {
		t.Errorf("output = %q", out.String())
	}
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	actual := write(t, dir, "actual.json", `[{"time": 0, "value": 1}, {"time": 10, "value": 1}]`)
	predicted := write(t, dir, "predicted.json", `[{"time": 0, "value": 0}, {"time": 10, "value": 0}]`)

	p, out := program(t, "--json", "compare", actual, predicted, "-n", "5")
	if err := p.Run(); nil != err {
		t.Fatalf("unexpected error: %v", err)
	}
	var c struct {
		MeanAbsDelta float64 `json:"meanAbsDelta"`
	}
	if err := json.Unmarshal(out.Bytes(), &c); nil != err {
		t.Fatal(err)
	}
	if c.MeanAbsDelta < 14.999 || c.MeanAbsDelta > 15.001 {
		t.Errorf("MeanAbsDelta = %v, want 15", c.MeanAbsDelta)
	}
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		write(t, dir, "a.json", string(testdata.ReplayJSON)),
		write(t, dir, "b.json", `{"notes": []}`),
		write(t, dir, "c.json", `{"notes": [`),
		write(t, dir, "d.json", string(testdata.ReplayJSON)),
	}

	p, _ := program(t, "batch", files[0])
	m := metrics.New()
	results := p.RunBatch(context.Background(), files, 3, m)
	if len(results) != len(files) {
		t.Fatalf("%d results, want %d", len(results), len(files))
	}
	for i, r := range results {
		if r.Index != i || r.File != files[i] {
			t.Errorf("result %d is out of order: %+v", i, r)
		}
	}
	if nil != results[0].Err || nil != results[3].Err {
		t.Errorf("errors = %v, %v", results[0].Err, results[3].Err)
	}
	for _, i := range []int{1, 2} {
		if !errors.Is(results[i].Err, score.ErrMalformed) {
			t.Errorf("result %d err = %v, want ErrMalformed", i, results[i].Err)
		}
	}
	if results[0].Scored.Result.Totals.Score != 368 {
		t.Errorf("score = %d, want 368", results[0].Scored.Result.Totals.Score)
	}
}

func TestOutcome(t *testing.T) {
	tests := map[string]error{
		metrics.Scored:    nil,
		metrics.Malformed: score.ErrMalformed,
		metrics.Rejected:  &validate.RejectionError{Reason: validate.ErrWrongSaber},
		metrics.Failed:    os.ErrNotExist,
	}
	for expected, err := range tests {
		if o := outcome(err); o != expected {
			t.Errorf("outcome(%v) = %s, want %s", err, o, expected)
		}
	}
}

func TestMissingChart(t *testing.T) {
	dir := t.TempDir()
	replay := write(t, dir, "replay.json", string(testdata.ReplayJSON))
	catalog := write(t, dir, "charts.json", `[]`)

	p, _ := program(t, "--catalog", catalog, "score", replay)
	s, err := p.Process(replay)
	if nil != err {
		t.Fatalf("unexpected error: %v", err)
	}
	if nil != s.Chart || nil != s.Points {
		t.Error("points computed without a chart")
	}
}

func TestReportWithoutColour(t *testing.T) {
	dir := t.TempDir()
	replay := write(t, dir, "replay.json", string(testdata.ReplayJSON))

	p, out := program(t, "score", replay)
	if err := p.Run(); nil != err {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out.String(), "\033[") || !strings.Contains(out.String(), "368 / 600") {
		t.Log(out.String())
		t.Fail()
	}
}
