package models

import (
	"time"

	"github.com/google/uuid"
)

type Certification struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;column:user_id;not null;index"`
	Name        string    `gorm:"type:text;not null"`
	URL         *string   `gorm:"type:text"`
	Description *string   `gorm:"type:text"`
	IsActive    bool      `gorm:"column:is_active;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
