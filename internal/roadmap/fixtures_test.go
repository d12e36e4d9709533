package roadmap

import (
	"fmt"
	"testing"
	"time"

	"github.com/naviproai/navi-backend/internal/domain"
)

var weekTopics = []string{
	"React Fundamentals",
	"Component State",
	"Hooks in Depth",
	"Routing and Data Fetching",
}

var taskTopics = []string{
	"Set up the project",
	"Build a component",
	"Wire up state",
	"Add routing",
	"Fetch remote data",
	"Ship a small feature",
}

// completeDoc builds a fully populated document that passes structural
// validation for the given month count.
func completeDoc(months int) *domain.RoadmapDoc {
	doc := &domain.RoadmapDoc{Goal: "become a frontend developer"}
	for m := 1; m <= months; m++ {
		month := domain.Month{
			Month:      m,
			MonthTitle: fmt.Sprintf("Milestone %d", m),
		}
		for w := 1; w <= domain.WeeksPerMonth; w++ {
			week := domain.Week{
				Week:       w,
				WeekNumber: w,
				Focus:      weekTopics[(w-1)%len(weekTopics)],
			}
			for d := 1; d <= domain.TasksPerWeek; d++ {
				week.DailyTasks = append(week.DailyTasks, domain.Task{
					Day:         d,
					Title:       taskTopics[(d-1)%len(taskTopics)],
					Description: "Work through the material and take notes",
				})
			}
			month.Weeks = append(month.Weeks, week)
		}
		doc.Months = append(doc.Months, month)
	}
	return doc
}

// enrichedDoc is completeDoc plus ids and flags, matching what gets
// persisted after generation.
func enrichedDoc(tb testing.TB, months int) *domain.RoadmapDoc {
	tb.Helper()
	doc := Normalize(completeDoc(months), months, domain.WeeksPerMonth, domain.TasksPerWeek)
	return Enrich(doc, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))
}

func freshProgress() *domain.Progress {
	return &domain.Progress{
		CurrentDay:   1,
		CurrentWeek:  1,
		CurrentMonth: 1,
		StartDate:    time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	}
}
