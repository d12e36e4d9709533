package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn is one user message / assistant reply pair. Rows are append-only;
// only the most recent few are read back for conversation context.
type ChatTurn struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            string    `gorm:"index;not null;column:user_id" json:"user_id"`
	UserMessage       string    `gorm:"type:text;column:user_message" json:"user_message"`
	AssistantResponse string    `gorm:"type:text;column:assistant_response" json:"assistant_response"`
	Timestamp         time.Time `gorm:"not null;index" json:"timestamp"`
}

func (ChatTurn) TableName() string { return "chat_history" }
