package resrec

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/resrec/resrec/internal/powermon"
)

// PowerSource produces best-effort power draw readings. A reading that
// cannot be produced is reported as unavailable through the ok flag,
// never as an error; power absence must not block a run.
type PowerSource interface {
	Sample() (watts float64, ok bool)
}

// options represents configuration options for the recorder components.
type options struct {
	interval time.Duration
	baseDir  string
	power    PowerSource
	logger   *slog.Logger
	output   io.Writer

	cpuPercent   func(interval time.Duration) (float64, error)
	memoryUsedMB func() (float64, error)
}

// makeDefaultOptions returns an options with default values.
func makeDefaultOptions() options {
	return options{
		interval:     time.Second,
		baseDir:      defaultBaseDir(),
		power:        powermon.Detect(),
		logger:       slog.Default(),
		output:       os.Stdout,
		cpuPercent:   cpuPercent,
		memoryUsedMB: memoryUsedMB,
	}
}

// defaultBaseDir returns the conventional report directory under the
// user's home, or a relative fallback when the home is unknown.
func defaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("resource-recorder", "runs")
	}
	return filepath.Join(home, "Desktop", "resource-recorder", "runs")
}

// Opt is a functional option type used to configure an options.
type Opt func(*options)

// WithInterval configures the sampling interval. The blocking CPU read
// paces the loop, so the interval is also the tick length.
// Panics on a non-positive interval.
func WithInterval(interval time.Duration) Opt {
	if interval <= 0 {
		panic(fmt.Sprintf("invalid interval: %v", interval))
	}
	return func(o *options) {
		o.interval = interval
	}
}

// WithPowerSource configures the power backend. If not specified, the
// platform backend selected by powermon.Detect will be used.
func WithPowerSource(power PowerSource) Opt {
	return func(o *options) {
		if power != nil {
			o.power = power
		}
	}
}

// WithLogger configures the options with a custom logger.
// If not specified, the default slog.Default() will be used.
func WithLogger(logger *slog.Logger) Opt {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithBaseDir configures the directory reports are written to.
// If not specified, <home>/Desktop/resource-recorder/runs will be used.
func WithBaseDir(dir string) Opt {
	return func(o *options) {
		if dir != "" {
			o.baseDir = dir
		}
	}
}

// WithOutput configures the writer the report is echoed to.
// If not specified, os.Stdout will be used.
func WithOutput(output io.Writer) Opt {
	return func(o *options) {
		if output != nil {
			o.output = output
		}
	}
}

// Recorder samples CPU utilization, memory usage and power draw once
// per tick until its context is canceled, then aggregates the series
// into a RunRecord.
type Recorder struct {
	opts options
}

// NewRecorder returns a new Recorder.
// It takes optional configuration options.
func NewRecorder(opts ...Opt) *Recorder {
	recorder := &Recorder{opts: makeDefaultOptions()}

	// apply functional options to configure the recorder
	for _, opt := range opts {
		opt(&recorder.opts)
	}

	return recorder
}

// Run records until ctx is canceled and returns the aggregated record.
// Cancellation is the normal way to end a run; the series are mutated
// only between boundary checks, so a stop request arriving mid-tick
// lets the current tick complete first and the series lengths stay
// consistent. A context already canceled on entry yields a valid,
// empty record.
//
// A CPU or memory read failure aborts the run since those metrics are
// mandatory. An unavailable power reading only leaves a gap in the
// watts series.
func (r *Recorder) Run(ctx context.Context) (RunRecord, error) {
	start := time.Now().UTC()

	var cpuSeries, ramSeries, wattSeries []float64
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		default:
		}

		// the blocking utilization read paces the loop
		cpu, err := r.opts.cpuPercent(r.opts.interval)
		if err != nil {
			return RunRecord{}, fmt.Errorf("read cpu utilization: %w", err)
		}
		ram, err := r.opts.memoryUsedMB()
		if err != nil {
			return RunRecord{}, fmt.Errorf("read memory usage: %w", err)
		}
		attrs := []any{slog.Float64("cpu", cpu), slog.Float64("ram", ram)}
		if watts, ok := r.opts.power.Sample(); ok {
			wattSeries = append(wattSeries, watts)
			attrs = append(attrs, slog.Float64("watts", watts))
		}
		cpuSeries = append(cpuSeries, cpu)
		ramSeries = append(ramSeries, ram)

		r.opts.logger.Debug("Recorded tick", attrs...)
	}

	return RunRecord{
		Start: start,
		End:   time.Now().UTC(),
		OS:    osLabel(),
		CPU:   Summarize(cpuSeries),
		RAM:   Summarize(ramSeries),
		Watts: Summarize(wattSeries),
	}, nil
}
