package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/naviproai/navi-backend/internal/domain"
	"github.com/naviproai/navi-backend/internal/pkg/logger"
)

type ProgressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, progress *domain.Progress) (*domain.Progress, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*domain.Progress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *domain.Progress) error
}

type progressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRepo {
	repoLog := baseLog.With("repo", "ProgressRepo")
	return &progressRepo{db: db, log: repoLog}
}

func (pr *progressRepo) Create(ctx context.Context, tx *gorm.DB, progress *domain.Progress) (*domain.Progress, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

func (pr *progressRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*domain.Progress, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result domain.Progress
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *progressRepo) Update(ctx context.Context, tx *gorm.DB, progress *domain.Progress) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Model(&domain.Progress{}).
		Where("id = ?", progress.ID).
		Updates(map[string]any{
			"current_day":           progress.CurrentDay,
			"current_week":          progress.CurrentWeek,
			"current_month":         progress.CurrentMonth,
			"total_tasks_completed": progress.TotalTasksCompleted,
		}).Error
}
