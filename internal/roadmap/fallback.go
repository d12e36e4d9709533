package roadmap

import (
	"github.com/naviproai/navi-backend/internal/domain"
)

// GenerationRequest carries the onboarding answers that shape a roadmap.
type GenerationRequest struct {
	Goal          string           `json:"goal" binding:"required"`
	TargetRole    string           `json:"target_role"`
	Timeframe     domain.Timeframe `json:"timeframe"`
	HoursPerWeek  string           `json:"hours_per_week"`
	LearningStyle string           `json:"learning_style"`
	LearningSpeed string           `json:"learning_speed"`
	SkillLevel    string           `json:"skill_level"`
}

// ApplyDefaults fills the optional request fields with the documented
// defaults.
func (r *GenerationRequest) ApplyDefaults() {
	if r.HoursPerWeek == "" {
		r.HoursPerWeek = "10"
	}
	if r.LearningStyle == "" {
		r.LearningStyle = "visual"
	}
	if r.LearningSpeed == "" {
		r.LearningSpeed = "average"
	}
	if r.SkillLevel == "" {
		r.SkillLevel = "beginner"
	}
}

// FallbackRoadmap deterministically builds a complete placeholder roadmap at
// the exact required cardinality. It never fails, so the caller can always
// return a structurally valid document when generation is exhausted.
func FallbackRoadmap(req GenerationRequest) *domain.RoadmapDoc {
	months := req.Timeframe.MonthCount()

	doc := &domain.RoadmapDoc{
		Goal:          req.Goal,
		TargetRole:    req.TargetRole,
		Timeframe:     string(req.Timeframe),
		LearningSpeed: req.LearningSpeed,
		SkillLevel:    req.SkillLevel,
		Months:        make([]domain.Month, 0, months),
	}

	for monthNum := 1; monthNum <= months; monthNum++ {
		month := placeholderMonth(monthNum)
		for weekNum := 1; weekNum <= domain.WeeksPerMonth; weekNum++ {
			week := placeholderWeek(weekNum)
			for dayNum := 1; dayNum <= domain.TasksPerWeek; dayNum++ {
				week.DailyTasks = append(week.DailyTasks, placeholderTask(dayNum))
			}
			month.Weeks = append(month.Weeks, week)
		}
		doc.Months = append(doc.Months, month)
	}
	return doc
}
