package resrec

import (
	"fmt"
	"strings"
	"time"
)

// FormatUptime renders a duration as a compact uptime string such as
// "3d 2h 5m 41s". Leading zero-valued units are omitted; the seconds
// part is always present.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int64(d.Seconds())
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}
