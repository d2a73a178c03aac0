package resumes

import (
	"time"

	"github.com/google/uuid"
	"github.com/resumehub/resumehub-backend/internal/resources"
	"github.com/resumehub/resumehub-backend/pkg/db/models"
)

// CreateResumeRequest composes previously created sections by id. Every
// referenced id must resolve to an active row owned by the caller, and a
// resume cannot exist without its personal information section.
type CreateResumeRequest struct {
	Title                  *string     `json:"title" validate:"omitempty,min=2,max=255"`
	PersonalInformationID  *uuid.UUID  `json:"personal_information_id" validate:"required"`
	ProfessionalSummaryIDs []uuid.UUID `json:"professional_summary_ids"`
	WorkExperienceIDs      []uuid.UUID `json:"work_experience_ids"`
	ProjectIDs             []uuid.UUID `json:"project_ids"`
	SkillIDs               []uuid.UUID `json:"skill_ids"`
	EducationIDs           []uuid.UUID `json:"education_ids"`
	CertificationIDs       []uuid.UUID `json:"certification_ids"`
}

// UpdateResumeRequest is a partial update. A nil list leaves the stored list
// untouched; an explicit empty list clears it.
type UpdateResumeRequest struct {
	Title                  *string      `json:"title" validate:"omitempty,min=2,max=255"`
	PersonalInformationID  *uuid.UUID   `json:"personal_information_id"`
	ProfessionalSummaryIDs *[]uuid.UUID `json:"professional_summary_ids"`
	WorkExperienceIDs      *[]uuid.UUID `json:"work_experience_ids"`
	ProjectIDs             *[]uuid.UUID `json:"project_ids"`
	SkillIDs               *[]uuid.UUID `json:"skill_ids"`
	EducationIDs           *[]uuid.UUID `json:"education_ids"`
	CertificationIDs       *[]uuid.UUID `json:"certification_ids"`
}

// RefsDTO is the stored shape of a resume, sections by id.
type RefsDTO struct {
	ID                     uuid.UUID   `json:"id"`
	Title                  string      `json:"title"`
	PersonalInformationID  *uuid.UUID  `json:"personal_information_id"`
	ProfessionalSummaryIDs []uuid.UUID `json:"professional_summary_ids"`
	WorkExperienceIDs      []uuid.UUID `json:"work_experience_ids"`
	ProjectIDs             []uuid.UUID `json:"project_ids"`
	SkillIDs               []uuid.UUID `json:"skill_ids"`
	EducationIDs           []uuid.UUID `json:"education_ids"`
	CertificationIDs       []uuid.UUID `json:"certification_ids"`
	CreatedAt              time.Time   `json:"created_at"`
	UpdatedAt              time.Time   `json:"updated_at"`
}

// DTO is the expanded shape of a resume. References that no longer resolve
// to an active owned row are dropped from the expansion.
type DTO struct {
	ID                    uuid.UUID                     `json:"id"`
	Title                 string                        `json:"title"`
	PersonalInformation   *resources.PersonalInfoDTO    `json:"personal_information"`
	ProfessionalSummaries []resources.SummaryDTO        `json:"professional_summaries"`
	WorkExperiences       []resources.WorkExperienceDTO `json:"work_experiences"`
	Projects              []resources.ProjectDTO        `json:"projects"`
	Skills                []resources.SkillDTO          `json:"skills"`
	Education             []resources.EducationDTO      `json:"education"`
	Certifications        []resources.CertificationDTO  `json:"certifications"`
	CreatedAt             time.Time                     `json:"created_at"`
	UpdatedAt             time.Time                     `json:"updated_at"`
}

func refsFromModel(m *models.Resume) *RefsDTO {
	return &RefsDTO{
		ID:                     m.ID,
		Title:                  m.Title,
		PersonalInformationID:  m.PersonalInformationID,
		ProfessionalSummaryIDs: m.ProfessionalSummaryIDs,
		WorkExperienceIDs:      m.WorkExperienceIDs,
		ProjectIDs:             m.ProjectIDs,
		SkillIDs:               m.SkillIDs,
		EducationIDs:           m.EducationIDs,
		CertificationIDs:       m.CertificationIDs,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}
