package reconcile

import "fmt"

// Report accumulates per-file outcomes across one run. Each processed file
// with a filename date increments exactly one counter; files whose filename
// carries no date increment none.
type Report struct {
	Updated   int
	Added     int
	Failed    int
	Preserved int
}

// AsText renders the counters one per line, in fixed order.
func (r Report) AsText() string {
	return fmt.Sprintf("Updated: %d\nAdded: %d\nFailed: %d\nPreserved: %d\n",
		r.Updated, r.Added, r.Failed, r.Preserved)
}
