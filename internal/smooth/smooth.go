// Package smooth resamples scattered (time, value) points onto an even grid
// using a gaussian-like kernel.
package smooth

import "math"

type Sample struct {
	Time  float64 `json:"time"`
	Value float64 `json:"value"`
}

// Params shape the kernel. BellWidthFraction is relative to the total duration.
type Params struct {
	BellWidthFraction float64
	SteepnessPower    float64
}

func DefaultParams() Params {
	return Params{BellWidthFraction: 0.05, SteepnessPower: 2}
}

// Baseline and Scale map the weighted mean onto the output scale.
const (
	Baseline = 100
	Scale    = 15
)

// Smooth evaluates the kernel regression at resolution evenly spaced times
// over [0, duration], duration being the latest sample time. With a zero
// bell width only samples exactly on a grid point count, other points are left out.
func Smooth(samples []Sample, resolution int, p Params) []Sample {
	if len(samples) == 0 || resolution <= 0 {
		return []Sample{}
	}

	duration := 0.0
	for _, s := range samples {
		if s.Time > duration {
			duration = s.Time
		}
	}

	bellWidth := duration * p.BellWidthFraction
	divider := -(2 * math.Pow(bellWidth, p.SteepnessPower))
	exponent := func(dt float64) float64 {
		return math.Pow(dt*dt, p.SteepnessPower/2) / divider
	}

	step := 0.0
	if resolution > 1 {
		step = duration / float64(resolution-1)
	}

	out := make([]Sample, 0, resolution)
	for i := 0; i < resolution; i++ {
		at := step * float64(i)
		weighted, total := 0.0, 0.0
		if divider == 0 {
			for _, s := range samples {
				if s.Time == at {
					weighted += s.Value
					total++
				}
			}
		} else {
			// Weights are taken relative to the nearest sample so they never all underflow.
			top := math.Inf(-1)
			for _, s := range samples {
				top = math.Max(top, exponent(s.Time-at))
			}
			if math.IsInf(top, -1) || math.IsNaN(top) {
				continue
			}
			for _, s := range samples {
				w := math.Exp(exponent(s.Time-at) - top)
				weighted += s.Value * w
				total += w
			}
		}
		if total == 0 {
			continue
		}
		out = append(out, Sample{Time: at, Value: Baseline + Scale*weighted/total})
	}
	return out
}
