package resrec

import (
	"testing"
	"time"

	"github.com/resrec/resrec/internal/assert"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"zero", 0, "0s"},
		{"seconds only", 4 * time.Second, "4s"},
		{"minutes and seconds", 61 * time.Second, "1m 1s"},
		{"hours without minutes", time.Hour, "1h 0s"},
		{"full form", 26*time.Hour + 3*time.Minute + 4*time.Second, "1d 2h 3m 4s"},
		{"days without hours", 86461 * time.Second, "1d 1m 1s"},
		{"negative clamps to zero", -5 * time.Second, "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, FormatUptime(tt.duration), tt.want)
		})
	}
}
