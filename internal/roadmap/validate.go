package roadmap

import (
	"strings"

	"github.com/naviproai/navi-backend/internal/domain"
	"github.com/naviproai/navi-backend/internal/pkg/logger"
)

// ValidateStructure checks that the document has the exact month/week/task
// cardinality for the requested timeframe and carries no placeholder-looking
// content. Failures are logged and reported as false, never raised.
func ValidateStructure(doc *domain.RoadmapDoc, timeframe domain.Timeframe, log *logger.Logger) bool {
	if doc == nil {
		return false
	}

	expectedMonths := timeframe.MonthCount()
	if len(doc.Months) != expectedMonths {
		if log != nil {
			log.Debug("Roadmap month count mismatch", "expected", expectedMonths, "got", len(doc.Months))
		}
		return false
	}

	for _, month := range doc.Months {
		if len(month.Weeks) != domain.WeeksPerMonth {
			if log != nil {
				log.Debug("Month does not have exactly 4 weeks", "month", month.Month, "weeks", len(month.Weeks))
			}
			return false
		}
		for _, week := range month.Weeks {
			if len(week.DailyTasks) != domain.TasksPerWeek {
				if log != nil {
					log.Debug("Week does not have exactly 6 tasks", "month", month.Month, "week", week.Week, "tasks", len(week.DailyTasks))
				}
				return false
			}
			if strings.Contains(week.Focus, "Learning") {
				if log != nil {
					log.Debug("Generic week focus detected", "focus", week.Focus)
				}
				return false
			}
			for _, task := range week.DailyTasks {
				if strings.Contains(task.Title, "Task") || strings.Contains(task.Title, "Day") {
					if log != nil {
						log.Debug("Generic task title detected", "title", task.Title)
					}
					return false
				}
			}
		}
	}
	return true
}
