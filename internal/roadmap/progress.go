package roadmap

import (
	"time"

	"github.com/naviproai/navi-backend/internal/domain"
)

// LocateCurrent returns the task at the (month, week, day) pointer when it
// exists and is not yet completed, along with its enclosing week. Returns
// nils when the pointer is past the end or the task is already done.
func LocateCurrent(doc *domain.RoadmapDoc, progress *domain.Progress) (*domain.Task, *domain.Week) {
	if doc == nil || progress == nil || progress.Completed() {
		return nil, nil
	}
	for i := range doc.Months {
		month := &doc.Months[i]
		if month.Month != progress.CurrentMonth {
			continue
		}
		for j := range month.Weeks {
			week := &month.Weeks[j]
			if week.Week != progress.CurrentWeek {
				continue
			}
			for k := range week.DailyTasks {
				task := &week.DailyTasks[k]
				if task.Day == progress.CurrentDay && !task.Completed {
					return task, week
				}
			}
		}
	}
	return nil, nil
}

// LocateWeek returns the week at the given (month, week) coordinates, or nil.
func LocateWeek(doc *domain.RoadmapDoc, monthNum, weekNum int) *domain.Week {
	if doc == nil {
		return nil
	}
	for i := range doc.Months {
		if doc.Months[i].Month != monthNum {
			continue
		}
		for j := range doc.Months[i].Weeks {
			if doc.Months[i].Weeks[j].Week == weekNum {
				return &doc.Months[i].Weeks[j]
			}
		}
	}
	return nil
}

// LocateByID returns the task with the given identifier regardless of its
// completion state, or nil when it does not exist.
func LocateByID(doc *domain.RoadmapDoc, taskID string) *domain.Task {
	if doc == nil || taskID == "" {
		return nil
	}
	for i := range doc.Months {
		for j := range doc.Months[i].Weeks {
			week := &doc.Months[i].Weeks[j]
			for k := range week.DailyTasks {
				if week.DailyTasks[k].TaskID == taskID {
					return &week.DailyTasks[k]
				}
			}
		}
	}
	return nil
}

// CompleteTask marks the identified task completed, bumps the counter, and
// advances the pointer to the next incomplete task. Reports whether the task
// was found. The returned task is the one that was completed.
func CompleteTask(doc *domain.RoadmapDoc, progress *domain.Progress, taskID string, now time.Time) (*domain.Task, bool) {
	task := LocateByID(doc, taskID)
	if task == nil {
		return nil, false
	}

	completedAt := now
	task.Completed = true
	task.CompletedDate = &completedAt
	progress.TotalTasksCompleted++

	AdvanceToNext(doc, progress)
	return task, true
}

// AdvanceToNext moves the pointer to the first incomplete task strictly after
// the current position in (month, week, day) order. The scan never looks
// behind the pointer, so the state machine is forward-only. When nothing
// remains, current_day is set to the completion sentinel.
func AdvanceToNext(doc *domain.RoadmapDoc, progress *domain.Progress) {
	currentMonth := progress.CurrentMonth
	currentWeek := progress.CurrentWeek
	currentDay := progress.CurrentDay

	for i := range doc.Months {
		month := &doc.Months[i]
		if month.Month < currentMonth {
			continue
		}
		for j := range month.Weeks {
			week := &month.Weeks[j]
			if month.Month == currentMonth && week.Week < currentWeek {
				continue
			}
			for k := range week.DailyTasks {
				task := &week.DailyTasks[k]
				after := month.Month > currentMonth ||
					week.Week > currentWeek ||
					task.Day > currentDay
				if after && !task.Completed {
					progress.CurrentMonth = month.Month
					progress.CurrentWeek = week.Week
					progress.CurrentDay = task.Day
					return
				}
			}
		}
	}
	progress.CurrentDay = domain.CompletedDaySentinel
}
