package door

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestFormatDuration checks the HH:MM:SS grammar and the day prefix.
func TestFormatDuration(t *testing.T) {
	t.Parallel()

	cases := map[time.Duration]string{
		0:                                 "00:00:00",
		time.Second:                       "00:00:01",
		59 * time.Second:                  "00:00:59",
		time.Minute:                       "00:01:00",
		61 * time.Second:                  "00:01:01",
		time.Hour:                         "01:00:00",
		23*time.Hour + 59*time.Minute:     "23:59:00",
		24 * time.Hour:                    "1d 00:00:00",
		25*time.Hour + 3*time.Second:      "1d 01:00:03",
		49*time.Hour + 90*time.Second:     "2d 01:01:30",
		3*24*time.Hour + 12*time.Hour:     "3d 12:00:00",
		10*24*time.Hour + 59*time.Second:  "10d 00:00:59",
		time.Second + 500*time.Millisecond: "00:00:01",
	}
	for d, want := range cases {
		require.Equal(t, want, FormatDuration(d), "duration %s", d)
	}
}
