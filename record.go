package resrec

import "time"

// Summary holds the aggregate statistics of one recorded series.
// A zero Count marks a series that produced no samples; Min, Max and
// Mean carry no meaning in that case.
type Summary struct {
	Min   float64
	Max   float64
	Mean  float64
	Count int
}

// Available reports whether the summary was computed from any samples.
func (s Summary) Available() bool {
	return s.Count > 0
}

// Summarize computes the Summary of a series. An empty series yields
// an unavailable Summary rather than an error; a single-element series
// is valid with min, max and mean coinciding.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	summary := Summary{Min: values[0], Max: values[0], Count: len(values)}
	var sum float64
	for _, value := range values {
		if value < summary.Min {
			summary.Min = value
		}
		if value > summary.Max {
			summary.Max = value
		}
		sum += value
	}
	summary.Mean = sum / float64(len(values))

	return summary
}

// RunRecord captures the outcome of a single recording run.
type RunRecord struct {
	Start time.Time
	End   time.Time
	OS    string

	CPU   Summary // utilization percent
	RAM   Summary // used megabytes
	Watts Summary // power draw, best effort
}

// Duration returns the elapsed run time in whole seconds, matching the
// second granularity of the run timestamps.
func (r RunRecord) Duration() int64 {
	return r.End.Unix() - r.Start.Unix()
}
