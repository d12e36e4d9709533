package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naviproai/navi-backend/internal/data/repos"
	"github.com/naviproai/navi-backend/internal/domain"
	"github.com/naviproai/navi-backend/internal/pkg/logger"
	"github.com/naviproai/navi-backend/internal/roadmap"
)

// DailyTask is the current-task payload served to the dashboard.
type DailyTask struct {
	TaskID            string               `json:"task_id"`
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	Goal              string               `json:"goal"`
	EstimatedTime     string               `json:"estimated_time"`
	Resources         []string             `json:"resources"`
	WeekFocus         string               `json:"week_focus"`
	MotivationMessage string               `json:"motivation_message"`
	Progress          *domain.ProgressInfo `json:"progress"`
}

// CompletionResult mirrors the tracker's post-state plus the full updated
// roadmap snapshot for immediate UI sync.
type CompletionResult struct {
	Status         string               `json:"status"`
	Message        string               `json:"message"`
	CompletedTask  string               `json:"completed_task"`
	TotalCompleted int                  `json:"total_completed"`
	Roadmap        *domain.RoadmapDoc   `json:"roadmap"`
	Progress       *domain.ProgressInfo `json:"progress"`
}

// ProgressSummary is the overall-progress payload.
type ProgressSummary struct {
	Goal                 string `json:"goal"`
	TotalTasks           int    `json:"total_tasks"`
	CompletedTasks       int    `json:"completed_tasks"`
	CompletionPercentage float64 `json:"completion_percentage"`
	CurrentMonth         int    `json:"current_month"`
	CurrentWeek          int    `json:"current_week"`
	CurrentDay           int    `json:"current_day"`
	StartDate            string `json:"start_date"`
}

type RoadmapService interface {
	GenerateRoadmap(ctx context.Context, userID string, req roadmap.GenerationRequest) (*domain.RoadmapDoc, error)
	GetUserRoadmap(ctx context.Context, userID string) (*domain.RoadmapDoc, error)
	GetDailyTask(ctx context.Context, userID string) (*DailyTask, error)
	CompleteTask(ctx context.Context, userID, taskID string) (*CompletionResult, error)
	GetProgressSummary(ctx context.Context, userID string) (*ProgressSummary, error)
}

type roadmapService struct {
	db           *gorm.DB
	log          *logger.Logger
	generator    *roadmap.Generator
	userRepo     repos.UserRepo
	roadmapRepo  repos.RoadmapRepo
	progressRepo repos.ProgressRepo
}

func NewRoadmapService(
	db *gorm.DB,
	baseLog *logger.Logger,
	generator *roadmap.Generator,
	userRepo repos.UserRepo,
	roadmapRepo repos.RoadmapRepo,
	progressRepo repos.ProgressRepo,
) RoadmapService {
	return &roadmapService{
		db:           db,
		log:          baseLog.With("service", "RoadmapService"),
		generator:    generator,
		userRepo:     userRepo,
		roadmapRepo:  roadmapRepo,
		progressRepo: progressRepo,
	}
}

// GenerateRoadmap builds and persists the roadmap, user record, and initial
// progress pointer in one transaction. Generation failures are absorbed by
// the fallback builder; the caller always gets a complete document.
func (rs *roadmapService) GenerateRoadmap(ctx context.Context, userID string, req roadmap.GenerationRequest) (*domain.RoadmapDoc, error) {
	req.ApplyDefaults()

	exists, err := rs.userRepo.Exists(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	doc, err := rs.generator.Generate(ctx, req)
	if err != nil {
		rs.log.Warn("Roadmap generation exhausted, using fallback", "user_id", userID, "error", err)
		doc = roadmap.FallbackRoadmap(req)
	}

	doc.Goal = req.Goal
	doc.TargetRole = req.TargetRole
	doc.Timeframe = string(req.Timeframe)
	doc.LearningStyle = req.LearningStyle
	doc.LearningSpeed = req.LearningSpeed
	doc.SkillLevel = req.SkillLevel

	now := time.Now()
	doc = roadmap.Normalize(doc, req.Timeframe.MonthCount(), domain.WeeksPerMonth, domain.TasksPerWeek)
	doc = roadmap.Enrich(doc, now)

	record := &domain.RoadmapRecord{ID: uuid.New(), UserID: userID}
	if err := record.SetDocument(doc); err != nil {
		return nil, err
	}

	err = rs.db.Transaction(func(tx *gorm.DB) error {
		if _, err := rs.userRepo.Create(ctx, tx, &domain.User{
			UserID:        userID,
			Goal:          req.Goal,
			TargetRole:    req.TargetRole,
			Timeframe:     string(req.Timeframe),
			HoursPerWeek:  req.HoursPerWeek,
			LearningStyle: req.LearningStyle,
			LearningSpeed: req.LearningSpeed,
			SkillLevel:    req.SkillLevel,
		}); err != nil {
			return err
		}
		if _, err := rs.roadmapRepo.Create(ctx, tx, record); err != nil {
			return err
		}
		if _, err := rs.progressRepo.Create(ctx, tx, &domain.Progress{
			ID:           uuid.New(),
			UserID:       userID,
			CurrentDay:   1,
			CurrentWeek:  1,
			CurrentMonth: 1,
			StartDate:    now,
		}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (rs *roadmapService) GetUserRoadmap(ctx context.Context, userID string) (*domain.RoadmapDoc, error) {
	user, err := rs.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	record, err := rs.roadmapRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRoadmapNotFound
	}

	doc, err := record.Document()
	if err != nil {
		return nil, err
	}

	progress, err := rs.progressRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if progress != nil {
		doc.Progress = progress.Info()
	}
	return doc, nil
}

func (rs *roadmapService) GetDailyTask(ctx context.Context, userID string) (*DailyTask, error) {
	user, err := rs.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	doc, progress, _, err := rs.loadDocAndProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	task, week := roadmap.LocateCurrent(doc, progress)
	if task == nil {
		// All tasks completed; handler renders the celebratory message.
		return nil, nil
	}

	motivation := roadmap.MotivationalMessage(doc.Goal, task.Title, progress.TotalTasksCompleted)
	return &DailyTask{
		TaskID:            task.TaskID,
		Title:             task.Title,
		Description:       task.Description,
		Goal:              doc.Goal,
		EstimatedTime:     task.EstimatedTime,
		Resources:         task.Resources,
		WeekFocus:         week.Focus,
		MotivationMessage: motivation,
		Progress:          progress.Info(),
	}, nil
}

// CompleteTask marks the target task done and advances the pointer. When no
// explicit task id is given, the current daily task is targeted.
func (rs *roadmapService) CompleteTask(ctx context.Context, userID, taskID string) (*CompletionResult, error) {
	user, err := rs.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	doc, progress, record, err := rs.loadDocAndProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	if taskID == "" {
		current, _ := roadmap.LocateCurrent(doc, progress)
		if current == nil {
			return nil, ErrNoCurrentTask
		}
		taskID = current.TaskID
	}

	completed, found := roadmap.CompleteTask(doc, progress, taskID, time.Now())
	if !found {
		return nil, ErrTaskNotFound
	}

	if err := record.SetDocument(doc); err != nil {
		return nil, err
	}
	err = rs.db.Transaction(func(tx *gorm.DB) error {
		if err := rs.roadmapRepo.UpdateDocument(ctx, tx, record.ID, record.RoadmapData); err != nil {
			return err
		}
		return rs.progressRepo.Update(ctx, tx, progress)
	})
	if err != nil {
		return nil, err
	}

	info := progress.Info()
	doc.Progress = info
	return &CompletionResult{
		Status:         "success",
		Message:        "Task completed! 🎉",
		CompletedTask:  completed.Title,
		TotalCompleted: progress.TotalTasksCompleted,
		Roadmap:        doc,
		Progress:       info,
	}, nil
}

func (rs *roadmapService) GetProgressSummary(ctx context.Context, userID string) (*ProgressSummary, error) {
	user, err := rs.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	doc, progress, _, err := rs.loadDocAndProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalTasks := doc.TotalTasks()
	completedTasks := progress.TotalTasksCompleted
	percentage := 0.0
	if totalTasks > 0 {
		percentage = math.Round(float64(completedTasks)/float64(totalTasks)*1000) / 10
	}

	return &ProgressSummary{
		Goal:                 user.Goal,
		TotalTasks:           totalTasks,
		CompletedTasks:       completedTasks,
		CompletionPercentage: percentage,
		CurrentMonth:         progress.CurrentMonth,
		CurrentWeek:          progress.CurrentWeek,
		CurrentDay:           progress.CurrentDay,
		StartDate:            progress.StartDate.Format(time.RFC3339),
	}, nil
}

func (rs *roadmapService) loadDocAndProgress(ctx context.Context, userID string) (*domain.RoadmapDoc, *domain.Progress, *domain.RoadmapRecord, error) {
	record, err := rs.roadmapRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	if record == nil {
		return nil, nil, nil, ErrRoadmapNotFound
	}

	progress, err := rs.progressRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	if progress == nil {
		return nil, nil, nil, ErrProgressNotFound
	}

	doc, err := record.Document()
	if err != nil {
		return nil, nil, nil, err
	}
	return doc, progress, record, nil
}
