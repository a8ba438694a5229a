package powermon

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// powermetricsTimeout bounds every powermetrics invocation so a hung or
// password-prompting subprocess cannot stall the sampling loop.
const powermetricsTimeout = time.Second

// powerLineKeys mark plain-text output lines carrying the package power figure.
var powerLineKeys = []string{"cpu power", "processor power", "package power", "pkg power"}

// runCommand executes the named command and returns its standard output.
type runCommand func(ctx context.Context, name string, args ...string) ([]byte, error)

// powermetricsBackend shells out to the macOS powermetrics utility.
// powermetrics requires root, so it runs through non-interactive sudo;
// without a matching sudoers rule the call fails fast and the reading
// is simply unavailable.
type powermetricsBackend struct {
	run     runCommand
	timeout time.Duration
}

func newPowermetricsBackend() *powermetricsBackend {
	return &powermetricsBackend{
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
		timeout: powermetricsTimeout,
	}
}

func (b *powermetricsBackend) Name() string { return "powermetrics" }

// Sample invokes powermetrics at most twice: once asking for structured
// JSON output and, when that yields nothing usable, once more in plain
// text mode. Timeouts, privilege errors and unparseable output all
// surface as an unavailable reading, never as a failure.
func (b *powermetricsBackend) Sample() (float64, bool) {
	if watts, ok := b.query(true); ok {
		return watts, true
	}
	return b.query(false)
}

func (b *powermetricsBackend) query(structured bool) (float64, bool) {
	args := []string{"-n", "powermetrics", "-n1", "-i200", "--samplers", "smc"}
	if structured {
		args = append(args, "-f", "json")
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	out, err := b.run(ctx, "sudo", args...)
	if err != nil {
		return 0, false
	}
	if structured {
		return parsePowerJSON(out)
	}
	return parsePowerText(string(out))
}

// parsePowerJSON extracts smc.package_watts from powermetrics JSON
// output. The stream may carry banner noise before the document, so
// decoding starts at the first opening brace.
func parsePowerJSON(out []byte) (float64, bool) {
	start := bytes.IndexByte(out, '{')
	if start < 0 {
		return 0, false
	}

	var doc struct {
		SMC struct {
			PackageWatts *float64 `json:"package_watts"`
		} `json:"smc"`
	}
	if err := json.Unmarshal(out[start:], &doc); err != nil || doc.SMC.PackageWatts == nil {
		return 0, false
	}

	watts := *doc.SMC.PackageWatts
	if watts < 0 {
		watts = 0
	}
	return watts, true
}

// parsePowerText scans plain-text powermetrics output for a package
// power line and returns its value in watts.
func parsePowerText(out string) (float64, bool) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "W") || !hasAny(strings.ToLower(line), powerLineKeys) {
			continue
		}
		if watts, ok := parseWattsValue(line); ok {
			return watts, true
		}
	}
	return 0, false
}

// hasAny reports whether s contains at least one of the substrings.
func hasAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// parseWattsValue extracts the first numeric token of a power line,
// honoring an attached or standalone unit suffix. Milliwatt figures
// are converted to watts.
func parseWattsValue(line string) (float64, bool) {
	fields := strings.Fields(strings.ToLower(line))
	for i, field := range fields {
		token, unit := field, ""
		switch {
		case strings.HasSuffix(token, "mw"):
			token, unit = strings.TrimSuffix(token, "mw"), "mw"
		case strings.HasSuffix(token, "w"):
			token, unit = strings.TrimSuffix(token, "w"), "w"
		}

		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		if unit == "" && i+1 < len(fields) {
			unit = fields[i+1]
		}
		if strings.HasPrefix(unit, "mw") {
			value /= 1000
		}
		if value < 0 {
			value = 0
		}
		return value, true
	}
	return 0, false
}
