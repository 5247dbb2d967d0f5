// Package reconcile decides what to do with a file's embedded capture date
// given the date encoded in its filename, and accumulates run-level counters.
package reconcile

import "time"

// Action describes the outcome of comparing a filename date with an embedded
// capture date for one file.
type Action string

const (
	// ActionPreserve: both dates exist and agree; copy the file unchanged.
	ActionPreserve Action = "preserve"
	// ActionAdd: the file has no embedded date; stamp the filename date.
	ActionAdd Action = "add"
	// ActionOverwrite: the embedded date disagrees with the filename date.
	ActionOverwrite Action = "overwrite"
	// ActionUnparseable: the filename carries no date; copy unchanged.
	ActionUnparseable Action = "unparseable"
)

// Decide classifies one file. Only the calendar date of the embedded
// timestamp participates; its time of day is ignored.
func Decide(filenameDate time.Time, hasFilenameDate bool, embedded time.Time, hasEmbedded bool) Action {
	switch {
	case !hasFilenameDate:
		return ActionUnparseable
	case !hasEmbedded:
		return ActionAdd
	case sameDay(filenameDate, embedded):
		return ActionPreserve
	default:
		return ActionOverwrite
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
