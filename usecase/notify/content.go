package notify

import (
	"fmt"
	"time"

	"github.com/farmflow/backend/domain"
)

const (
	urgentPrefix  = "🚨 "
	taskListLink  = "/tasks"
	dateShort     = "Jan 2"
	dateLong      = "Jan 2, 2006"
	testAlertBody = "Notifications are working correctly! You'll receive alerts for upcoming task due dates."
)

// buildAlert renders the reminder content for a task already known to be due
// within the lead window. The framing depends on the calendar-day distance,
// not on elapsed hours: a task due early tomorrow morning is "tomorrow" even
// if that is less than 24 hours away.
func buildAlert(task domain.Task, now time.Time) Alert {
	due := *task.DueDate

	var title, body string
	switch days := calendarDays(now, due); days {
	case 0:
		title = "Task Due Today! 📅"
		body = fmt.Sprintf("%s is due today", task.Title)
	case 1:
		title = "Task Due Tomorrow! ⏰"
		body = fmt.Sprintf("%s is due tomorrow (%s)", task.Title, due.Format(dateShort))
	default:
		title = fmt.Sprintf("Task Due in %d Days", days)
		body = fmt.Sprintf("%s is due on %s", task.Title, due.Format(dateLong))
	}

	alert := Alert{
		Title:      title,
		Body:       body,
		Tag:        "task-" + task.ID,
		Link:       taskListLink,
		CloseAfter: alertAutoClose,
	}

	if task.IsHighPriority() {
		alert.Title = urgentPrefix + alert.Title
		alert.RequireInteraction = true
		alert.CloseAfter = 0
	}

	return alert
}

// calendarDays counts whole calendar days between two instants, so 23:00
// today to 01:00 tomorrow is one day. Both dates are anchored to UTC
// midnights before subtracting; local midnights are not 24 hours apart
// across a DST transition.
func calendarDays(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.In(from.Location()).Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start) / (24 * time.Hour))
}
