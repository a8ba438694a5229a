package resrec

import (
	"testing"
	"time"

	"github.com/resrec/resrec/internal/assert"
)

func TestCPUPercent(t *testing.T) {
	value, err := cpuPercent(50 * time.Millisecond)
	assert.NoError(t, err)
	assert.True(t, value >= 0)
	assert.True(t, value <= 100)
}

func TestMemoryUsedMB(t *testing.T) {
	value, err := memoryUsedMB()
	assert.NoError(t, err)
	assert.True(t, value > 0)
}

func TestOSLabel(t *testing.T) {
	assert.NotEqual(t, osLabel(), "")
}

func TestUptime(t *testing.T) {
	uptime, err := Uptime()
	assert.NoError(t, err)
	assert.True(t, uptime > 0)
}
