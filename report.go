package resrec

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// TimestampLayout is the second-granularity layout used for run
// timestamps, both in the report body and in the summary file name.
const TimestampLayout = "2006-01-02_15-04-05"

// notAvailable is rendered in place of statistics that have no samples.
const notAvailable = "N/A"

// Render produces the fixed-layout report text for a run. CPU and RAM
// statistics carry one decimal place and watt statistics two; a metric
// without samples renders as N/A. The text ends with a newline.
func Render(record RunRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Run started : %s\n", record.Start.Format(TimestampLayout))
	fmt.Fprintf(&sb, "Run ended   : %s\n", record.End.Format(TimestampLayout))
	fmt.Fprintf(&sb, "Duration    : %d s\n", record.Duration())
	fmt.Fprintf(&sb, "OS          : %s\n", record.OS)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "CPU usage %% : %s\n", statLine(record.CPU, 1))
	fmt.Fprintf(&sb, "RAM used MB : %s\n", statLine(record.RAM, 1))
	fmt.Fprintf(&sb, "Watts       : %s\n", statLine(record.Watts, 2))
	return sb.String()
}

// statLine renders the min, max and mean of a summary at the given
// precision, or the N/A marker for each when there are no samples.
func statLine(summary Summary, decimals int) string {
	format := func(value float64) string {
		if !summary.Available() {
			return notAvailable
		}
		return strconv.FormatFloat(value, 'f', decimals, 64)
	}
	return fmt.Sprintf("min %s · max %s · avg %s",
		format(summary.Min), format(summary.Max), format(summary.Mean))
}

// ReportWriter persists run records as flat text reports, one file per
// run, named after the run's start timestamp.
type ReportWriter struct {
	opts options
}

// NewReportWriter returns a new ReportWriter.
// It takes optional configuration options.
func NewReportWriter(opts ...Opt) *ReportWriter {
	writer := &ReportWriter{opts: makeDefaultOptions()}

	// apply functional options to configure the writer
	for _, opt := range opts {
		opt(&writer.opts)
	}

	return writer
}

// Write echoes the rendered report to the configured output, stores it
// under the configured directory as summary_<start timestamp>.txt, and
// confirms the location. Creating the directory is idempotent. It
// returns the path of the written file.
func (w *ReportWriter) Write(record RunRecord) (string, error) {
	report := Render(record)

	fmt.Fprintf(w.opts.output, "\n%s\n", strings.TrimSpace(report))

	if err := os.MkdirAll(w.opts.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	name := fmt.Sprintf("summary_%s.txt", record.Start.Format(TimestampLayout))
	path := filepath.Join(w.opts.baseDir, name)
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	w.opts.logger.Debug("Wrote report", slog.String("path", path))
	fmt.Fprintf(w.opts.output, "Saved → %s\n", path)

	return path, nil
}
