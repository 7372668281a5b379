package smooth

import "math"

// Comparison holds two curves smoothed onto the same grid.
type Comparison struct {
	Actual    []Sample `json:"actual"`
	Predicted []Sample `json:"predicted"`
	// Delta is actual minus predicted where both curves have a point.
	Delta []Sample `json:"delta"`
	// MeanAbsDelta is 0 when the curves share no point.
	MeanAbsDelta float64 `json:"meanAbsDelta"`
}

// Compare smooths both sample sets over the longer of the two durations so
// their grids line up.
func Compare(actual, predicted []Sample, resolution int, p Params) Comparison {
	end := math.Max(lastTime(actual), lastTime(predicted))
	a := Smooth(withAnchor(actual, end), resolution, p)
	b := Smooth(withAnchor(predicted, end), resolution, p)

	c := Comparison{Actual: a, Predicted: b, Delta: []Sample{}}
	j := 0
	sum := 0.0
	for _, s := range a {
		for j < len(b) && b[j].Time < s.Time {
			j++
		}
		if j < len(b) && b[j].Time == s.Time {
			d := s.Value - b[j].Value
			c.Delta = append(c.Delta, Sample{Time: s.Time, Value: d})
			sum += math.Abs(d)
		}
	}
	if len(c.Delta) > 0 {
		c.MeanAbsDelta = sum / float64(len(c.Delta))
	}
	return c
}

func lastTime(samples []Sample) float64 {
	end := 0.0
	for _, s := range samples {
		if s.Time > end {
			end = s.Time
		}
	}
	return end
}

// withAnchor stretches a sample set to end by repeating its last value there,
// so that both curves are evaluated on the same time grid.
func withAnchor(samples []Sample, end float64) []Sample {
	if len(samples) == 0 || lastTime(samples) >= end {
		return samples
	}
	last := samples[0]
	for _, s := range samples {
		if s.Time >= last.Time {
			last = s
		}
	}
	out := append([]Sample(nil), samples...)
	return append(out, Sample{Time: end, Value: last.Value})
}
