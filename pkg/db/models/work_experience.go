package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkExperience is one employment entry. IsCurrent and EndDate are mutually
// exclusive: a current position has no end date and a past one requires it.
type WorkExperience struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;column:user_id;not null;index"`
	Title       string     `gorm:"type:text;not null"`
	Name        string     `gorm:"type:text;not null"`
	URL         *string    `gorm:"type:text"`
	Location    *string    `gorm:"type:text"`
	StartDate   time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate     *time.Time `gorm:"column:end_date;type:date"`
	IsCurrent   bool       `gorm:"column:is_current;not null;default:false"`
	Description *string    `gorm:"type:text"`
	IsActive    bool       `gorm:"column:is_active;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
