package door

import (
	"fmt"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
)

// FormatDuration renders an elapsed span as "Dd HH:MM:SS", dropping the
// day component when it is zero.
func FormatDuration(d time.Duration) string {
	totalSeconds := int64(d.Seconds())

	days := totalSeconds / secondsPerDay
	hours := (totalSeconds % secondsPerDay) / secondsPerHour
	minutes := (totalSeconds % secondsPerHour) / secondsPerMinute
	seconds := totalSeconds % secondsPerMinute

	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, minutes, seconds)
	}

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
