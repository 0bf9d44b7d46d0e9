package exclusion

import (
	"fmt"
	"time"
)

// Range is a half-open time interval [Start, End). A Range with
// Start == End is empty and carries no time.
type Range struct {
	Start time.Time
	End   time.Time
}

// IsEmpty reports whether the range covers no time at all.
func (r Range) IsEmpty() bool {
	return !r.Start.Before(r.End)
}

// Duration returns the length of the range.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Contains reports whether t falls inside the range, inclusive of Start
// and exclusive of End.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Overlaps reports whether the open intersection of the two ranges is
// non-empty. Empty ranges overlap nothing.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Equal reports whether both ranges describe the same instants. The
// endpoints may be in different locations; see time.Time.Equal.
func (r Range) Equal(other Range) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

func (r Range) String() string {
	const layout = "2006-01-02 15:04:05"
	return fmt.Sprintf("[%s, %s)", r.Start.Format(layout), r.End.Format(layout))
}
