package smooth

import (
	"math"
	"testing"
)

func TestSmoothEmpty(t *testing.T) {
	out := Smooth(nil, 50, DefaultParams())
	if nil == out || len(out) != 0 {
		t.Errorf("Smooth(nil) = %v, want an empty slice", out)
	}
}

func TestSmoothSingleSample(t *testing.T) {
	for _, at := range []float64{0, 3, 120} {
		out := Smooth([]Sample{{Time: at, Value: 0.8}}, 25, Params{BellWidthFraction: 0.1, SteepnessPower: 2})
		if len(out) != 25 {
			t.Fatalf("sample at %v: len = %d, want 25", at, len(out))
		}
		for _, s := range out {
			if math.Abs(s.Value-112) > 1e-9 {
				t.Fatalf("sample at %v: value %v at %v, want 112", at, s.Value, s.Time)
			}
		}
	}
}

func TestSmoothGrid(t *testing.T) {
	samples := []Sample{{Time: 10, Value: 1}, {Time: 0, Value: 0}, {Time: 5, Value: 0.5}}
	out := Smooth(samples, 3, Params{BellWidthFraction: 0.01, SteepnessPower: 2})
	expected := []Sample{{0, 100}, {5, 107.5}, {10, 115}}
	if len(out) != len(expected) {
		t.Fatalf("len = %d, want %d", len(out), len(expected))
	}
	for i := range expected {
		if out[i].Time != expected[i].Time || math.Abs(out[i].Value-expected[i].Value) > 1e-6 {
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
			break
		}
	}
}

func TestSmoothFarFromSamples(t *testing.T) {
	tests := []Params{
		{BellWidthFraction: 0.05, SteepnessPower: 4},
		{BellWidthFraction: 0.01, SteepnessPower: 2},
		{BellWidthFraction: 0.0001, SteepnessPower: 2},
	}
	for _, p := range tests {
		out := Smooth([]Sample{{Time: 10, Value: 0.5}}, 5, p)
		if len(out) != 5 {
			t.Fatalf("params %v: len = %d, want 5", p, len(out))
		}
		for _, s := range out {
			if math.Abs(s.Value-107.5) > 1e-9 {
				t.Errorf("params %v: value %v at %v, want 107.5", p, s.Value, s.Time)
			}
		}
	}

	samples := []Sample{{Time: 0, Value: 0}, {Time: 1000, Value: 1}}
	out := Smooth(samples, 3, Params{BellWidthFraction: 0.0001, SteepnessPower: 2})
	if len(out) != 3 || math.Abs(out[1].Value-107.5) > 1e-9 {
		t.Errorf("midpoint between two samples = %v", out)
	}
}

func TestSmoothZeroBellWidth(t *testing.T) {
	samples := []Sample{{Time: 0, Value: 1}, {Time: 1000, Value: 1}}
	out := Smooth(samples, 3, Params{BellWidthFraction: 0, SteepnessPower: 2})
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2: %v", len(out), out)
	}
	if out[0].Time != 0 || out[1].Time != 1000 {
		t.Errorf("unexpected points %v", out)
	}
}

func TestSmoothWeightsNearbySamples(t *testing.T) {
	samples := []Sample{{Time: 0, Value: 0}, {Time: 2, Value: 1}, {Time: 10, Value: 0}}
	out := Smooth(samples, 11, DefaultParams())
	if out[2].Value <= out[8].Value {
		t.Errorf("peak should be near t=2: %v", out)
	}
}

func TestCompare(t *testing.T) {
	actual := []Sample{{Time: 0, Value: 0.9}, {Time: 10, Value: 0.9}}
	predicted := []Sample{{Time: 0, Value: 0.8}, {Time: 5, Value: 0.8}}
	c := Compare(actual, predicted, 11, DefaultParams())
	if len(c.Actual) != 11 || len(c.Predicted) != 11 || len(c.Delta) != 11 {
		t.Fatalf("lengths = %d, %d, %d", len(c.Actual), len(c.Predicted), len(c.Delta))
	}
	if math.Abs(c.MeanAbsDelta-1.5) > 1e-9 {
		t.Errorf("MeanAbsDelta = %v, want 1.5", c.MeanAbsDelta)
	}
	for _, d := range c.Delta {
		if math.Abs(d.Value-1.5) > 1e-9 {
			t.Errorf("delta %v at %v, want 1.5", d.Value, d.Time)
		}
	}
}

func TestCompareEmptyPrediction(t *testing.T) {
	c := Compare([]Sample{{Time: 1, Value: 1}}, nil, 5, DefaultParams())
	if len(c.Predicted) != 0 || len(c.Delta) != 0 || c.MeanAbsDelta != 0 {
		t.Errorf("Compare with no prediction = %+v", c)
	}
}

var benchResult []Sample

func BenchmarkSmooth(b *testing.B) {
	samples := make([]Sample, 1000)
	for i := range samples {
		samples[i] = Sample{Time: float64(i) * 0.3, Value: math.Sin(float64(i))}
	}
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		benchResult = Smooth(samples, 100, DefaultParams())
	}
}
