package resrec

import (
	"testing"
	"time"

	"github.com/resrec/resrec/internal/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Summary
	}{
		{
			name:   "empty series",
			values: nil,
			want:   Summary{},
		},
		{
			name:   "single element",
			values: []float64{42.5},
			want:   Summary{Min: 42.5, Max: 42.5, Mean: 42.5, Count: 1},
		},
		{
			name:   "ordered values",
			values: []float64{1, 2, 3, 4},
			want:   Summary{Min: 1, Max: 4, Mean: 2.5, Count: 4},
		},
		{
			name:   "unordered with negatives",
			values: []float64{3, -7, 12, 0},
			want:   Summary{Min: -7, Max: 12, Mean: 2, Count: 4},
		},
		{
			name:   "constant series",
			values: []float64{5, 5, 5},
			want:   Summary{Min: 5, Max: 5, Mean: 5, Count: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.values)
			assert.Equal(t, summary, tt.want)
			assert.Equal(t, summary.Available(), len(tt.values) > 0)
			if summary.Available() {
				assert.True(t, summary.Min <= summary.Mean)
				assert.True(t, summary.Mean <= summary.Max)
			}
		})
	}
}

func TestSummarizeEmptyIsSafe(t *testing.T) {
	summary := Summarize([]float64{})
	assert.False(t, summary.Available())
	assert.Equal(t, summary, Summary{})
}

func TestRunRecordDuration(t *testing.T) {
	start := time.Date(2026, time.March, 5, 10, 0, 0, 900_000_000, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int64
	}{
		{"same second", start, 0},
		{"whole seconds", start.Add(90 * time.Second), 90},
		{"subsecond truncation", start.Add(1200 * time.Millisecond), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := RunRecord{Start: start, End: tt.end}
			assert.Equal(t, record.Duration(), tt.want)
		})
	}
}
