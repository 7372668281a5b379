package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"git.lost.host/meutraa/beatstat/internal/game"
)

// FileSource serves charts from a json array kept in memory.
type FileSource struct {
	charts []game.Chart
}

func NewFileSource(file string) (*FileSource, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read catalog: %w", err)
	}
	return ParseFileSource(data)
}

func ParseFileSource(data []byte) (*FileSource, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("catalog is not valid json")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		doc = doc.Get("charts")
	}
	if !doc.IsArray() {
		return nil, errors.New("catalog holds no chart array")
	}

	s := &FileSource{}
	for _, v := range doc.Array() {
		s.charts = append(s.charts, chart(v))
	}
	return s, nil
}

func (s *FileSource) Chart(hash string, difficulty game.Difficulty) (game.Chart, error) {
	difficulty = game.NewDifficulty(difficulty.Name, difficulty.Mode)
	for _, c := range s.charts {
		if matches(c, hash, difficulty) {
			return c, nil
		}
	}
	return game.Chart{}, fmt.Errorf("%s %s %s: %w", hash, difficulty.Name, difficulty.Mode, ErrNotFound)
}
