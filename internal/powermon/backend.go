package powermon

import "runtime"

// Backend reads the machine's instantaneous power draw. Implementations
// never fail: a reading that cannot be produced is reported as
// unavailable through the ok flag instead of an error.
type Backend interface {
	// Sample returns the current power draw in watts.
	// The ok flag is false when no reading is available.
	Sample() (watts float64, ok bool)
	// Name identifies the backend strategy.
	Name() string
}

// Detect returns the power backend for the current platform:
//   - Linux: Intel RAPL energy counters under /sys/class/powercap
//   - macOS: the powermetrics utility via non-interactive sudo
//   - Windows: the battery discharge rate
//   - other platforms: a no-op backend that never produces a reading
//
// The selection happens once; callers remain agnostic to the concrete
// strategy behind the returned Backend.
func Detect() Backend {
	return detect(runtime.GOOS)
}

func detect(goos string) Backend {
	switch goos {
	case "linux":
		return newRAPLBackend(OSFileSystem{}, powercapDir)
	case "darwin":
		return newPowermetricsBackend()
	case "windows":
		return newBatteryBackend()
	default:
		return noopBackend{}
	}
}

// noopBackend serves platforms without a power reading strategy.
type noopBackend struct{}

func (noopBackend) Sample() (float64, bool) { return 0, false }

func (noopBackend) Name() string { return "none" }
