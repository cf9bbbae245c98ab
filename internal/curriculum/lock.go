package curriculum

import (
	"time"

	"github.com/google/uuid"
)

// Locked decides whether the lesson at index i of the unit's ordered lesson
// list is currently inaccessible. Pure and total: it never fails for
// well-formed inputs and is re-evaluated on every render, never cached,
// because unit state can change underneath a long-lived client.
//
// Rules, in order:
//  1. A manually locked unit blocks everything.
//  2. A unit scheduled for the future blocks everything until then.
//  3. Non-sequential units are otherwise open.
//  4. The first lesson of a sequential unit is open.
//  5. Any later lesson requires the immediately preceding lesson to have a
//     submitted or graded submission.
func Locked(u Unit, i int, statuses map[uuid.UUID]SubmissionStatus, now time.Time) bool {
	if u.IsLocked {
		return true
	}
	if u.AvailableAt != nil && u.AvailableAt.After(now) {
		return true
	}
	if !u.IsSequential {
		return false
	}
	if i <= 0 {
		return false
	}
	if i >= len(u.Lessons) {
		// Out-of-range index cannot name a real lesson; treat as locked
		// rather than guessing.
		return true
	}

	prev := u.Lessons[i-1]
	status, ok := statuses[prev.ID]
	if !ok {
		return true
	}
	return !status.Complete()
}
