package models

import (
	"time"

	"github.com/google/uuid"
)

type ProfessionalSummary struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;column:user_id;not null;index"`
	Summary   string    `gorm:"type:text;not null"`
	IsActive  bool      `gorm:"column:is_active;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (ProfessionalSummary) TableName() string { return "professional_summaries" }
