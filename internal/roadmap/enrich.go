package roadmap

import (
	"fmt"
	"time"

	"github.com/naviproai/navi-backend/internal/domain"
)

// Enrich attaches derived identifiers, completion flags, and an initial
// progress block to a structurally complete document. Pure transform.
func Enrich(doc *domain.RoadmapDoc, now time.Time) *domain.RoadmapDoc {
	doc.Progress = &domain.ProgressInfo{
		CurrentDay:          1,
		CurrentWeek:         1,
		CurrentMonth:        1,
		TotalTasksCompleted: 0,
		StartDate:           now.Format(time.RFC3339),
	}

	for i := range doc.Months {
		month := &doc.Months[i]
		for j := range month.Weeks {
			week := &month.Weeks[j]
			week.WeekID = domain.WeekIDFor(month.Month, week.Week)
			week.Completed = false

			for k := range week.DailyTasks {
				task := &week.DailyTasks[k]
				task.TaskID = domain.TaskIDFor(month.Month, week.Week, task.Day)
				task.Completed = false
				task.CompletedDate = nil
				if task.Description == "" {
					task.Description = fmt.Sprintf("Master the fundamentals of %s", week.Focus)
				}
				if task.EstimatedTime == "" {
					task.EstimatedTime = "2 hours"
				}
			}
		}
	}
	return doc
}
