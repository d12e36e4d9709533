package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompletedDaySentinel is stored in CurrentDay when every task in the
// roadmap has been completed.
const CompletedDaySentinel = -1

// Progress is the per-user pointer into the roadmap document plus a
// monotonically non-decreasing completion counter.
type Progress struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              string    `gorm:"index;not null;column:user_id" json:"user_id"`
	CurrentDay          int       `gorm:"not null;default:1" json:"current_day"`
	CurrentWeek         int       `gorm:"not null;default:1" json:"current_week"`
	CurrentMonth        int       `gorm:"not null;default:1" json:"current_month"`
	TotalTasksCompleted int       `gorm:"not null;default:0" json:"total_tasks_completed"`
	StartDate           time.Time `gorm:"not null" json:"start_date"`
}

func (Progress) TableName() string { return "progress" }

// Completed reports whether the pointer has reached the terminal state.
func (p *Progress) Completed() bool {
	return p.CurrentDay == CompletedDaySentinel
}

// Info returns the response-shaped progress block.
func (p *Progress) Info() *ProgressInfo {
	return &ProgressInfo{
		CurrentDay:          p.CurrentDay,
		CurrentWeek:         p.CurrentWeek,
		CurrentMonth:        p.CurrentMonth,
		TotalTasksCompleted: p.TotalTasksCompleted,
		StartDate:           p.StartDate.Format(time.RFC3339),
	}
}
