package curriculum

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func testUnit(sequential bool, n int) Unit {
	u := Unit{Name: "Loops", IsSequential: sequential}
	for i := 0; i < n; i++ {
		u.Lessons = append(u.Lessons, Lesson{ID: uuid.New(), Position: i})
	}
	return u
}

func TestLocked_ManualLockWins(t *testing.T) {
	u := testUnit(false, 2)
	u.IsLocked = true

	for i := range u.Lessons {
		if !Locked(u, i, nil, time.Now()) {
			t.Errorf("lesson %d unlocked in manually locked unit", i)
		}
	}
}

func TestLocked_FutureAvailableAt(t *testing.T) {
	u := testUnit(false, 2)
	at := time.Now().Add(time.Hour)
	u.AvailableAt = &at

	if !Locked(u, 0, nil, time.Now()) {
		t.Error("unit scheduled one hour out should be locked now")
	}
	if Locked(u, 0, nil, at.Add(time.Minute)) {
		t.Error("unit should unlock after availableAt passes")
	}
}

func TestLocked_NonSequentialOpen(t *testing.T) {
	u := testUnit(false, 3)
	if Locked(u, 2, nil, time.Now()) {
		t.Error("non-sequential unit should be open")
	}
}

func TestLocked_SequentialFirstLessonOpen(t *testing.T) {
	u := testUnit(true, 3)
	if Locked(u, 0, nil, time.Now()) {
		t.Error("first lesson of sequential unit should be open")
	}
}

func TestLocked_SequentialRequiresPriorComplete(t *testing.T) {
	u := testUnit(true, 3)
	prev := u.Lessons[0].ID

	// No submission at all for lesson 0.
	if !Locked(u, 1, nil, time.Now()) {
		t.Error("lesson 1 should be locked without a prior submission")
	}

	// Draft does not count.
	statuses := map[uuid.UUID]SubmissionStatus{prev: StatusDraft}
	if !Locked(u, 1, statuses, time.Now()) {
		t.Error("draft on lesson 0 should keep lesson 1 locked")
	}

	// Submitted unlocks.
	statuses[prev] = StatusSubmitted
	if Locked(u, 1, statuses, time.Now()) {
		t.Error("submitted lesson 0 should unlock lesson 1")
	}

	// Graded unlocks too.
	statuses[prev] = StatusGraded
	if Locked(u, 1, statuses, time.Now()) {
		t.Error("graded lesson 0 should unlock lesson 1")
	}
}

// If lesson i is locked in a sequential unit, lesson i+1 must be locked too.
func TestLocked_Monotonic(t *testing.T) {
	u := testUnit(true, 4)
	statuses := map[uuid.UUID]SubmissionStatus{
		u.Lessons[0].ID: StatusSubmitted,
		// Lesson 1 has only a draft, so lessons 2 and 3 stay locked.
		u.Lessons[1].ID: StatusDraft,
	}

	now := time.Now()
	lockedSeen := false
	for i := range u.Lessons {
		locked := Locked(u, i, statuses, now)
		if lockedSeen && !locked {
			t.Errorf("lesson %d unlocked after an earlier locked lesson", i)
		}
		if locked {
			lockedSeen = true
		}
	}
}

func TestLocked_OutOfRangeIndex(t *testing.T) {
	u := testUnit(true, 2)
	if !Locked(u, 5, nil, time.Now()) {
		t.Error("out-of-range lesson index should report locked")
	}
}
