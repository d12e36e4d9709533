package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/naviproai/navi-backend/internal/domain"
	"github.com/naviproai/navi-backend/internal/pkg/logger"
)

type ChatRepo interface {
	Append(ctx context.Context, tx *gorm.DB, turn *domain.ChatTurn) (*domain.ChatTurn, error)
	GetRecent(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*domain.ChatTurn, error)
}

type chatRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatRepo(db *gorm.DB, baseLog *logger.Logger) ChatRepo {
	repoLog := baseLog.With("repo", "ChatRepo")
	return &chatRepo{db: db, log: repoLog}
}

func (cr *chatRepo) Append(ctx context.Context, tx *gorm.DB, turn *domain.ChatTurn) (*domain.ChatTurn, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(turn).Error; err != nil {
		return nil, err
	}
	return turn, nil
}

// GetRecent returns the newest turns for a user in chronological order.
func (cr *chatRepo) GetRecent(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*domain.ChatTurn, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if limit <= 0 {
		limit = 6
	}
	var results []*domain.ChatTurn
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results, nil
}
