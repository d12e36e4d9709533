package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/naviproai/navi-backend/internal/domain"
	"github.com/naviproai/navi-backend/internal/pkg/logger"
)

type RoadmapRepo interface {
	Create(ctx context.Context, tx *gorm.DB, record *domain.RoadmapRecord) (*domain.RoadmapRecord, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*domain.RoadmapRecord, error)
	UpdateDocument(ctx context.Context, tx *gorm.DB, recordID uuid.UUID, data datatypes.JSON) error
}

type roadmapRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapRepo {
	repoLog := baseLog.With("repo", "RoadmapRepo")
	return &roadmapRepo{db: db, log: repoLog}
}

func (rr *roadmapRepo) Create(ctx context.Context, tx *gorm.DB, record *domain.RoadmapRecord) (*domain.RoadmapRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (rr *roadmapRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*domain.RoadmapRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var result domain.RoadmapRecord
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

func (rr *roadmapRepo) UpdateDocument(ctx context.Context, tx *gorm.DB, recordID uuid.UUID, data datatypes.JSON) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Model(&domain.RoadmapRecord{}).
		Where("id = ?", recordID).
		Update("roadmap_data", data).Error
}
