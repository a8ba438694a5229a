package powermon

import (
	"testing"

	"github.com/resrec/resrec/internal/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "rapl"},
		{"darwin", "powermetrics"},
		{"windows", "battery"},
		{"freebsd", "none"},
		{"plan9", "none"},
		{"js", "none"},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, detect(tt.goos).Name(), tt.want)
		})
	}
}

func TestDetectCurrentPlatform(t *testing.T) {
	backend := Detect()
	if backend == nil {
		t.Fatal("expected a backend for the current platform")
	}

	// sampling must never fail, whatever the platform offers
	for range 2 {
		if watts, ok := backend.Sample(); ok && watts < 0 {
			t.Fatalf("negative power reading: %f", watts)
		}
	}
}

func TestNoopBackend(t *testing.T) {
	backend := noopBackend{}
	assert.Equal(t, backend.Name(), "none")

	_, ok := backend.Sample()
	assert.False(t, ok)
}
