package parser

import (
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"git.lost.host/meutraa/beatstat/internal/smooth"
)

// ParseSamples reads a curve given either as [{"time":..,"value":..}] or as
// an object holding such an array under "samples", "notes" or "accuracies".
func ParseSamples(file string) ([]smooth.Sample, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to read samples %s", file)
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.Errorf("samples %s: invalid json document", file)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		for _, key := range []string{"samples", "notes", "accuracies"} {
			if v := doc.Get(key); v.IsArray() {
				doc = v
				break
			}
		}
	}
	if !doc.IsArray() {
		return nil, errors.Errorf("samples %s: no sample array found", file)
	}

	samples := []smooth.Sample{}
	for i, v := range doc.Array() {
		t, value := v.Get("time"), v.Get("value")
		if !value.Exists() {
			value = v.Get("accuracy")
		}
		if !t.Exists() || !value.Exists() {
			return nil, errors.Errorf("samples %s: entry %d needs time and value", file, i)
		}
		samples = append(samples, smooth.Sample{Time: t.Float(), Value: value.Float()})
	}
	return samples, nil
}
