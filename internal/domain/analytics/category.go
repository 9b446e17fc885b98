package analytics

import "time"

// Category is one time bucket of a reporting range. Buckets produced for a
// range are contiguous, non-overlapping, ordered ascending, and together cover
// the range exactly: the first bucket starts at the range start, the last one
// ends at the range end even when the natural calendar period extends beyond.
type Category struct {
	Label string
	Start time.Time
	End   time.Time
}
