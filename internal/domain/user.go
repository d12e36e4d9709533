package domain

import (
	"time"
)

// User stores the onboarding answers for one externally authenticated user.
// UserID comes from the identity service, so it is the primary key directly.
type User struct {
	UserID        string    `gorm:"primaryKey;column:user_id" json:"user_id"`
	Goal          string    `gorm:"column:goal" json:"goal"`
	TargetRole    string    `gorm:"column:target_role" json:"target_role"`
	Timeframe     string    `gorm:"column:timeframe" json:"timeframe"`
	HoursPerWeek  string    `gorm:"column:hours_per_week" json:"hours_per_week"`
	LearningStyle string    `gorm:"column:learning_style" json:"learning_style"`
	LearningSpeed string    `gorm:"column:learning_speed" json:"learning_speed"`
	SkillLevel    string    `gorm:"column:skill_level" json:"skill_level"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

func (User) TableName() string { return "users" }
