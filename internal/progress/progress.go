// Package progress derives completion percentages from already-loaded
// collections. It performs no storage access.
package progress

import "math"

// Percent returns the rounded percentage of items for which done reports
// true. An empty collection is 0 percent, never a division by zero.
func Percent[T any](items []T, done func(T) bool) int {
	if len(items) == 0 {
		return 0
	}
	count := 0
	for _, item := range items {
		if done(item) {
			count++
		}
	}
	return int(math.Round(100 * float64(count) / float64(len(items))))
}
