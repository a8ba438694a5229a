package powermon

import (
	"path"
	"strconv"
	"strings"
	"time"
)

const (
	powercapDir    = "/sys/class/powercap"
	raplPrefix     = "intel-rapl:"
	energyFileName = "energy_uj"
)

// raplBackend derives power draw from the cumulative energy counters
// exposed by the Linux powercap framework. Each call differences the
// summed counter total against the previous one.
type raplBackend struct {
	fs  FileSystem
	dir string
	now func() time.Time

	prevTotal float64 // micro-joules
	prevTime  time.Time
	primed    bool
}

func newRAPLBackend(fs FileSystem, dir string) *raplBackend {
	return &raplBackend{
		fs:  fs,
		dir: dir,
		now: time.Now,
	}
}

func (b *raplBackend) Name() string { return "rapl" }

// Sample converts the energy consumed since the previous call to watts.
// The first call only primes the baseline and reports no value. A total
// that did not grow (counter reset or rollover) reads as zero watts,
// never negative.
func (b *raplBackend) Sample() (float64, bool) {
	total, ok := b.readTotal()
	if !ok {
		return 0, false
	}

	now := b.now()
	if !b.primed {
		b.prevTotal, b.prevTime, b.primed = total, now, true
		return 0, false
	}

	elapsed := now.Sub(b.prevTime).Seconds()
	delta := total - b.prevTotal
	b.prevTotal, b.prevTime = total, now

	if elapsed <= 0 {
		return 0, false
	}
	watts := delta / elapsed / 1e6
	if watts < 0 {
		watts = 0
	}
	return watts, true
}

// readTotal sums the energy counters of all readable RAPL domains.
// Domains without a readable counter are skipped.
func (b *raplBackend) readTotal() (float64, bool) {
	entries, err := b.fs.ReadDir(b.dir)
	if err != nil {
		return 0, false
	}

	var total float64
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), raplPrefix) {
			continue
		}
		data, err := b.fs.ReadFile(path.Join(b.dir, entry.Name(), energyFileName))
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
		if err != nil {
			continue
		}
		total += value
	}
	if total == 0 {
		return 0, false
	}
	return total, true
}
