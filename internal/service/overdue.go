package service

import (
	"time"

	"github.com/edutech-lab/school-library-service/internal/model"
)

// IsOverdue is the single definition of "overdue": an unreturned record whose
// due date has passed. The persisted OVERDUE status is a cache of this predicate.
func IsOverdue(rec model.BorrowingRecord, now time.Time) bool {
	if rec.Status == model.RecordStatusReturned {
		return false
	}
	return dateOf(rec.DueDate).Before(dateOf(now))
}

// DaysOverdue reports whole days past the due date, floored at zero.
func DaysOverdue(rec model.BorrowingRecord, now time.Time) int {
	days := int(dateOf(now).Sub(dateOf(rec.DueDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
