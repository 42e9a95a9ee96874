package notify

import (
	"time"

	"github.com/farmflow/backend/domain"
)

// DueSoon returns the tasks whose due date falls inside
// [now, end of the day now+leadDays], excluding completed tasks and tasks
// without a due date. Both bounds are inclusive: a task due at this exact
// instant and a task due at the last moment of the target day both match.
// The input order is preserved; no ordering is guaranteed beyond that.
func DueSoon(tasks []domain.Task, leadDays int, now time.Time) []domain.Task {
	target := endOfDay(now.AddDate(0, 0, leadDays))

	var due []domain.Task
	for _, task := range tasks {
		if task.Completed || task.DueDate == nil {
			continue
		}
		d := *task.DueDate
		if d.Before(now) || d.After(target) {
			continue
		}
		due = append(due, task)
	}
	return due
}

func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
