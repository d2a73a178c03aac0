package models

import (
	"time"

	"github.com/google/uuid"
	dbtypes "github.com/resumehub/resumehub-backend/pkg/db/types"
)

// PersonalInformation holds the contact header of a resume. At most one
// active row per user, enforced by a partial unique index on user_id.
type PersonalInformation struct {
	ID                uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;column:user_id;not null;index"`
	FullName          string          `gorm:"column:full_name;not null"`
	ProfessionalTitle string          `gorm:"column:professional_title;not null"`
	Email             string          `gorm:"type:text;not null"`
	PhoneNumber       *string         `gorm:"column:phone_number"`
	Location          *string         `gorm:"column:location"`
	SocialMediaURLs   dbtypes.JSONMap `gorm:"type:jsonb;column:social_media_urls;not null;default:'{}'"`
	IsActive          bool            `gorm:"column:is_active;not null"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (PersonalInformation) TableName() string { return "personal_information" }
