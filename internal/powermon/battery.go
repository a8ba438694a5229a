package powermon

import "github.com/distatus/battery"

// batteryBackend estimates power draw from the battery discharge rate.
// It only produces readings while the machine is actually draining a
// battery; on mains power there is nothing to measure.
type batteryBackend struct {
	getAll func() ([]*battery.Battery, error)
}

func newBatteryBackend() *batteryBackend {
	return &batteryBackend{getAll: battery.GetAll}
}

func (b *batteryBackend) Name() string { return "battery" }

// Sample sums the discharge rate of every discharging battery.
// A missing battery, a charging or full state, and an unreported rate
// all leave the reading unavailable.
func (b *batteryBackend) Sample() (float64, bool) {
	batteries, err := b.getAll()
	if err != nil && len(batteries) == 0 {
		return 0, false
	}

	var milliwatts float64
	for _, bat := range batteries {
		if bat == nil || bat.State != battery.Discharging {
			continue
		}
		if bat.ChargeRate > 0 {
			milliwatts += bat.ChargeRate
		}
	}
	if milliwatts == 0 {
		return 0, false
	}
	return milliwatts / 1000, true
}
