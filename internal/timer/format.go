package timer

import "fmt"

// FormatClock renders seconds as a zero-padded MM:SS countdown.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
