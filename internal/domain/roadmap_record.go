package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RoadmapRecord persists the full roadmap document for one user as a JSON
// column. The document is always read, transformed, and written back whole.
type RoadmapRecord struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string         `gorm:"index;not null;column:user_id" json:"user_id"`
	RoadmapData datatypes.JSON `gorm:"column:roadmap_data" json:"roadmap_data"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
}

func (RoadmapRecord) TableName() string { return "roadmaps" }

// Document decodes the stored JSON into a RoadmapDoc.
func (r *RoadmapRecord) Document() (*RoadmapDoc, error) {
	var doc RoadmapDoc
	if err := json.Unmarshal(r.RoadmapData, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// SetDocument encodes doc back into the JSON column.
func (r *RoadmapRecord) SetDocument(doc *RoadmapDoc) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	r.RoadmapData = datatypes.JSON(raw)
	return nil
}
