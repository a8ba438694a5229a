package powermon

import (
	"errors"
	"testing"

	"github.com/distatus/battery"

	"github.com/resrec/resrec/internal/assert"
)

func TestBatterySample(t *testing.T) {
	tests := []struct {
		name      string
		batteries []*battery.Battery
		err       error
		wantWatts float64
		wantOK    bool
	}{
		{
			name:      "discharging",
			batteries: []*battery.Battery{{State: battery.Discharging, ChargeRate: 12500}},
			wantWatts: 12.5,
			wantOK:    true,
		},
		{
			name: "sums discharging batteries",
			batteries: []*battery.Battery{
				{State: battery.Discharging, ChargeRate: 8000},
				{State: battery.Discharging, ChargeRate: 4500},
			},
			wantWatts: 12.5,
			wantOK:    true,
		},
		{
			name:      "on mains power",
			batteries: []*battery.Battery{{State: battery.Charging, ChargeRate: 30000}},
			wantOK:    false,
		},
		{
			name:      "full battery",
			batteries: []*battery.Battery{{State: battery.Full}},
			wantOK:    false,
		},
		{
			name:      "rate not reported",
			batteries: []*battery.Battery{{State: battery.Discharging}},
			wantOK:    false,
		},
		{
			name:   "no battery present",
			err:    errors.New("no battery"),
			wantOK: false,
		},
		{
			name: "partial enumeration failure",
			batteries: []*battery.Battery{
				nil,
				{State: battery.Discharging, ChargeRate: 6000},
			},
			err:       errors.New("battery 0: unreadable"),
			wantWatts: 6,
			wantOK:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newBatteryBackend()
			backend.getAll = func() ([]*battery.Battery, error) {
				return tt.batteries, tt.err
			}

			watts, ok := backend.Sample()
			assert.Equal(t, ok, tt.wantOK)
			assert.Equal(t, watts, tt.wantWatts)
		})
	}
}

func TestBatteryName(t *testing.T) {
	assert.Equal(t, newBatteryBackend().Name(), "battery")
}
