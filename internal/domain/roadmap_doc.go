package domain

import (
	"fmt"
	"time"
)

// RoadmapDoc is the full roadmap document persisted as JSON on the roadmap
// record. The field names mirror the wire schema the model is prompted with.
type RoadmapDoc struct {
	Goal          string        `json:"goal"`
	TargetRole    string        `json:"target_role"`
	Timeframe     string        `json:"timeframe"`
	LearningStyle string        `json:"learning_style,omitempty"`
	LearningSpeed string        `json:"learning_speed,omitempty"`
	SkillLevel    string        `json:"skill_level,omitempty"`
	Months        []Month       `json:"roadmap"`
	Progress      *ProgressInfo `json:"progress,omitempty"`
}

type Month struct {
	Month      int    `json:"month"`
	MonthTitle string `json:"month_title"`
	Weeks      []Week `json:"weeks"`
}

type Week struct {
	Week       int    `json:"week"`
	WeekNumber int    `json:"week_number"`
	WeekID     string `json:"week_id,omitempty"`
	Focus      string `json:"focus"`
	Completed  bool   `json:"completed"`
	DailyTasks []Task `json:"daily_tasks"`
}

type Task struct {
	Day           int        `json:"day"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	TaskID        string     `json:"task_id,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completed_date"`
	EstimatedTime string     `json:"estimated_time,omitempty"`
	Resources     []string   `json:"resources,omitempty"`
}

// ProgressInfo is the progress block embedded in roadmap responses. It mirrors
// the progress table, not the document's own state.
type ProgressInfo struct {
	CurrentDay          int    `json:"current_day"`
	CurrentWeek         int    `json:"current_week"`
	CurrentMonth        int    `json:"current_month"`
	TotalTasksCompleted int    `json:"total_tasks_completed"`
	StartDate           string `json:"start_date,omitempty"`
}

// WeekID derives the stable week identifier for a (month, week) pair.
func WeekIDFor(month, week int) string {
	return fmt.Sprintf("month_%d_week_%d", month, week)
}

// TaskIDFor derives the stable task identifier for a (month, week, day) triple.
func TaskIDFor(month, week, day int) string {
	return fmt.Sprintf("m%d_w%d_d%d", month, week, day)
}

// TotalTasks counts every daily task in the document.
func (d *RoadmapDoc) TotalTasks() int {
	total := 0
	for i := range d.Months {
		for j := range d.Months[i].Weeks {
			total += len(d.Months[i].Weeks[j].DailyTasks)
		}
	}
	return total
}
