package score

import "math"

// BuildScoreGraph averages timeline accuracy per whole second of the replay.
// Empty seconds repeat the previous value, an empty first second is 1.
// The timeline must be sorted by time.
func BuildScoreGraph(timeline []NoteStruct, duration float64) []float64 {
	buckets := 0
	if duration > 0 {
		buckets = int(math.Floor(duration))
	}
	graph := make([]float64, buckets)

	j := 0
	for i := 0; i < buckets; i++ {
		start, end := float64(i), float64(i+1)
		sum, count := 0.0, 0
		for ; j < len(timeline) && timeline[j].Time < end; j++ {
			if timeline[j].Time >= start {
				sum += timeline[j].Accuracy
				count++
			}
		}
		switch {
		case count > 0:
			graph[i] = sum / float64(count)
		case i == 0:
			graph[i] = 1
		default:
			graph[i] = graph[i-1]
		}
	}
	return graph
}
