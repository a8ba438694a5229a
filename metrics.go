package resrec

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// cpuPercent measures system-wide CPU utilization over the given
// interval. The call blocks for the full interval, which is what paces
// the sampling loop.
func cpuPercent(interval time.Duration) (float64, error) {
	percents, err := cpu.Percent(interval, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, errors.New("no cpu utilization reported")
	}
	return percents[0], nil
}

// memoryUsedMB returns the amount of used system memory in megabytes.
func memoryUsedMB() (float64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return float64(vm.Used) / 1024 / 1024, nil
}

// osLabel builds the platform label shown in the report, falling back
// to the bare GOOS when host details are not reported.
func osLabel() string {
	info, err := host.Info()
	if err != nil || info.Platform == "" {
		return runtime.GOOS
	}
	if info.PlatformVersion == "" {
		return info.Platform
	}
	return fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
}

// Uptime returns how long the system has been up.
func Uptime() (time.Duration, error) {
	seconds, err := host.Uptime()
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}
