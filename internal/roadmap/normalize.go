package roadmap

import (
	"fmt"
	"sort"

	"github.com/naviproai/navi-backend/internal/domain"
)

// Normalize fills any missing months, weeks, or daily tasks with placeholder
// entries and sorts all three levels by index. The result always has exactly
// months x weeksPerMonth x daysPerWeek entries regardless of how partial or
// disordered the input is. Idempotent.
func Normalize(doc *domain.RoadmapDoc, months, weeksPerMonth, daysPerWeek int) *domain.RoadmapDoc {
	if doc == nil {
		doc = &domain.RoadmapDoc{}
	}
	if months <= 0 {
		months = 3
	}
	if weeksPerMonth <= 0 {
		weeksPerMonth = domain.WeeksPerMonth
	}
	if daysPerWeek <= 0 {
		daysPerWeek = domain.TasksPerWeek
	}

	for monthNum := 1; monthNum <= months; monthNum++ {
		monthIdx := findMonth(doc.Months, monthNum)
		if monthIdx == -1 {
			doc.Months = append(doc.Months, placeholderMonth(monthNum))
			monthIdx = len(doc.Months) - 1
		}
		month := &doc.Months[monthIdx]

		for weekNum := 1; weekNum <= weeksPerMonth; weekNum++ {
			weekIdx := findWeek(month.Weeks, weekNum)
			if weekIdx == -1 {
				month.Weeks = append(month.Weeks, placeholderWeek(weekNum))
				weekIdx = len(month.Weeks) - 1
			}
			week := &month.Weeks[weekIdx]

			for dayNum := 1; dayNum <= daysPerWeek; dayNum++ {
				if findTask(week.DailyTasks, dayNum) == -1 {
					week.DailyTasks = append(week.DailyTasks, placeholderTask(dayNum))
				}
			}
			sort.SliceStable(week.DailyTasks, func(i, j int) bool {
				return week.DailyTasks[i].Day < week.DailyTasks[j].Day
			})
		}
		sort.SliceStable(month.Weeks, func(i, j int) bool {
			return month.Weeks[i].Week < month.Weeks[j].Week
		})
	}
	sort.SliceStable(doc.Months, func(i, j int) bool {
		return doc.Months[i].Month < doc.Months[j].Month
	})
	return doc
}

func findMonth(months []domain.Month, monthNum int) int {
	for i := range months {
		if months[i].Month == monthNum {
			return i
		}
	}
	return -1
}

func findWeek(weeks []domain.Week, weekNum int) int {
	for i := range weeks {
		if weeks[i].Week == weekNum {
			return i
		}
	}
	return -1
}

func findTask(tasks []domain.Task, dayNum int) int {
	for i := range tasks {
		if tasks[i].Day == dayNum {
			return i
		}
	}
	return -1
}

func placeholderMonth(monthNum int) domain.Month {
	return domain.Month{
		Month:      monthNum,
		MonthTitle: fmt.Sprintf("Month %d Focus", monthNum),
		Weeks:      []domain.Week{},
	}
}

func placeholderWeek(weekNum int) domain.Week {
	return domain.Week{
		Week:       weekNum,
		WeekNumber: weekNum,
		Focus:      fmt.Sprintf("Week %d Learning", weekNum),
		DailyTasks: []domain.Task{},
	}
}

func placeholderTask(dayNum int) domain.Task {
	return domain.Task{
		Day:         dayNum,
		Title:       fmt.Sprintf("Day %d Task", dayNum),
		Description: fmt.Sprintf("Complete day %d learning activities", dayNum),
	}
}
