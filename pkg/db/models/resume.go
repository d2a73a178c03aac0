package models

import (
	"time"

	"github.com/google/uuid"
	dbtypes "github.com/resumehub/resumehub-backend/pkg/db/types"
)

// Resume composes previously created sections by reference. The uuid[] lists
// are weak references: rows they point at may be soft-deleted later, and
// reads drop anything that no longer resolves.
type Resume struct {
	ID                     uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID                 uuid.UUID         `gorm:"type:uuid;column:user_id;not null;index"`
	Title                  string            `gorm:"type:text;not null;default:'Default Resume'"`
	PersonalInformationID  *uuid.UUID        `gorm:"type:uuid;column:personal_information_id"`
	ProfessionalSummaryIDs dbtypes.UUIDArray `gorm:"type:uuid[];column:professional_summary_ids;not null;default:ARRAY[]::uuid[]"`
	WorkExperienceIDs      dbtypes.UUIDArray `gorm:"type:uuid[];column:work_experience_ids;not null;default:ARRAY[]::uuid[]"`
	ProjectIDs             dbtypes.UUIDArray `gorm:"type:uuid[];column:project_ids;not null;default:ARRAY[]::uuid[]"`
	SkillIDs               dbtypes.UUIDArray `gorm:"type:uuid[];column:skill_ids;not null;default:ARRAY[]::uuid[]"`
	EducationIDs           dbtypes.UUIDArray `gorm:"type:uuid[];column:education_ids;not null;default:ARRAY[]::uuid[]"`
	CertificationIDs       dbtypes.UUIDArray `gorm:"type:uuid[];column:certification_ids;not null;default:ARRAY[]::uuid[]"`
	IsActive               bool              `gorm:"column:is_active;not null"`
	CreatedAt              time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt              time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
