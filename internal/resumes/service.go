package resumes

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/resumehub/resumehub-backend/api/validators"
	"github.com/resumehub/resumehub-backend/internal/ownership"
	"github.com/resumehub/resumehub-backend/internal/resources"
	"github.com/resumehub/resumehub-backend/pkg/db/models"
	dbtypes "github.com/resumehub/resumehub-backend/pkg/db/types"
	pkgerrors "github.com/resumehub/resumehub-backend/pkg/errors"
	"gorm.io/gorm"
)

const defaultResumeTitle = "Default Resume"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service manages resume composition. Referenced section ids are strictly
// validated at write time; at read time the references are weak and anything
// that no longer resolves is dropped from the expansion.
type Service struct {
	tx      txRunner
	checker *ownership.Checker

	repo           *resources.Repository[models.Resume]
	personalInfo   *resources.Repository[models.PersonalInformation]
	summaries      *resources.Repository[models.ProfessionalSummary]
	workExp        *resources.Repository[models.WorkExperience]
	projects       *resources.Repository[models.Project]
	skills         *resources.Repository[models.Skill]
	education      *resources.Repository[models.Education]
	certifications *resources.Repository[models.Certification]
}

// NewService constructs the resume service over the shared connection.
func NewService(tx txRunner, conn *gorm.DB) *Service {
	return &Service{
		tx:             tx,
		checker:        ownership.NewChecker(conn),
		repo:           resources.NewRepository[models.Resume](conn, "created_at DESC"),
		personalInfo:   resources.NewRepository[models.PersonalInformation](conn, "created_at DESC"),
		summaries:      resources.NewRepository[models.ProfessionalSummary](conn, "created_at DESC"),
		workExp:        resources.NewRepository[models.WorkExperience](conn, "start_date DESC", "created_at DESC"),
		projects:       resources.NewRepository[models.Project](conn, "start_date DESC", "created_at DESC"),
		skills:         resources.NewRepository[models.Skill](conn, "name ASC", "created_at DESC"),
		education:      resources.NewRepository[models.Education](conn, "start_date DESC", "created_at DESC"),
		certifications: resources.NewRepository[models.Certification](conn, "created_at DESC"),
	}
}

// Create validates every referenced id against the caller's active rows and
// stores the composition. Validation and insert share a transaction so a
// section deleted mid-flight cannot slip into a new resume.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateResumeRequest) (*RefsDTO, error) {
	if err := validators.ValidateStruct(&req); err != nil {
		return nil, err
	}

	title := defaultResumeTitle
	if req.Title != nil {
		title = *req.Title
	}

	row := &models.Resume{
		UserID:                 userID,
		Title:                  title,
		PersonalInformationID:  req.PersonalInformationID,
		ProfessionalSummaryIDs: listOrEmpty(req.ProfessionalSummaryIDs),
		WorkExperienceIDs:      listOrEmpty(req.WorkExperienceIDs),
		ProjectIDs:             listOrEmpty(req.ProjectIDs),
		SkillIDs:               listOrEmpty(req.SkillIDs),
		EducationIDs:           listOrEmpty(req.EducationIDs),
		CertificationIDs:       listOrEmpty(req.CertificationIDs),
		IsActive:               true,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.validateReferences(ctx, s.checker.WithTx(tx), userID, row); err != nil {
			return err
		}
		return tx.WithContext(ctx).Create(row).Error
	})
	if err != nil {
		return nil, err
	}
	return refsFromModel(row), nil
}

// GetAll returns the caller's resumes unexpanded, newest first.
func (s *Service) GetAll(ctx context.Context, userID uuid.UUID) ([]RefsDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list resumes")
	}
	out := make([]RefsDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *refsFromModel(&rows[i]))
	}
	return out, nil
}

// GetByID loads one resume and expands its references into full sections.
func (s *Service) GetByID(ctx context.Context, id, userID uuid.UUID) (*DTO, error) {
	row, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "resume not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load resume")
	}
	return s.expand(ctx, userID, row)
}

// Update merges the provided fields over the stored resume. Only references
// present in the request are validated; stored lists the request leaves
// untouched may have gone stale and are handled at read time instead.
func (s *Service) Update(ctx context.Context, id, userID uuid.UUID, req UpdateResumeRequest) (*RefsDTO, error) {
	if err := validators.ValidateStruct(&req); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "resume not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load resume")
	}

	columns := map[string]any{}
	touched := &models.Resume{}
	if req.Title != nil {
		columns["title"] = *req.Title
	}
	if req.PersonalInformationID != nil {
		touched.PersonalInformationID = req.PersonalInformationID
		columns["personal_information_id"] = *req.PersonalInformationID
	}
	if req.ProfessionalSummaryIDs != nil {
		touched.ProfessionalSummaryIDs = listOrEmpty(*req.ProfessionalSummaryIDs)
		columns["professional_summary_ids"] = touched.ProfessionalSummaryIDs
	}
	if req.WorkExperienceIDs != nil {
		touched.WorkExperienceIDs = listOrEmpty(*req.WorkExperienceIDs)
		columns["work_experience_ids"] = touched.WorkExperienceIDs
	}
	if req.ProjectIDs != nil {
		touched.ProjectIDs = listOrEmpty(*req.ProjectIDs)
		columns["project_ids"] = touched.ProjectIDs
	}
	if req.SkillIDs != nil {
		touched.SkillIDs = listOrEmpty(*req.SkillIDs)
		columns["skill_ids"] = touched.SkillIDs
	}
	if req.EducationIDs != nil {
		touched.EducationIDs = listOrEmpty(*req.EducationIDs)
		columns["education_ids"] = touched.EducationIDs
	}
	if req.CertificationIDs != nil {
		touched.CertificationIDs = listOrEmpty(*req.CertificationIDs)
		columns["certification_ids"] = touched.CertificationIDs
	}
	if len(columns) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no valid fields to update")
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.validateReferences(ctx, s.checker.WithTx(tx), userID, touched); err != nil {
			return err
		}
		result := tx.WithContext(ctx).
			Model(&models.Resume{}).
			Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
			Updates(columns)
		if result.Error != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "update resume")
		}
		if result.RowsAffected == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "resume not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load resume")
	}
	return refsFromModel(updated), nil
}

// Delete soft-deletes the resume. Referenced sections are untouched.
func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := s.repo.SoftDelete(ctx, id, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete resume")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "resume not found")
	}
	return nil
}

func (s *Service) validateReferences(ctx context.Context, checker *ownership.Checker, userID uuid.UUID, row *models.Resume) error {
	if row.PersonalInformationID != nil {
		owns, err := checker.Owns(ctx, ownership.PersonalInformation, *row.PersonalInformationID, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check personal information")
		}
		if !owns {
			return invalidReference("personal information entries")
		}
	}

	lists := []struct {
		resource ownership.Resource
		ids      []uuid.UUID
		label    string
	}{
		{ownership.ProfessionalSummaries, row.ProfessionalSummaryIDs, "professional summaries"},
		{ownership.WorkExperiences, row.WorkExperienceIDs, "work experiences"},
		{ownership.Projects, row.ProjectIDs, "projects"},
		{ownership.Skills, row.SkillIDs, "skills"},
		{ownership.Education, row.EducationIDs, "education entries"},
		{ownership.Certifications, row.CertificationIDs, "certifications"},
	}
	for _, l := range lists {
		owns, err := checker.OwnsAll(ctx, l.resource, l.ids, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check "+l.label)
		}
		if !owns {
			return invalidReference(l.label)
		}
	}
	return nil
}

func (s *Service) expand(ctx context.Context, userID uuid.UUID, row *models.Resume) (*DTO, error) {
	dto := &DTO{
		ID:                    row.ID,
		Title:                 row.Title,
		ProfessionalSummaries: []resources.SummaryDTO{},
		WorkExperiences:       []resources.WorkExperienceDTO{},
		Projects:              []resources.ProjectDTO{},
		Skills:                []resources.SkillDTO{},
		Education:             []resources.EducationDTO{},
		Certifications:        []resources.CertificationDTO{},
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}

	if row.PersonalInformationID != nil {
		info, err := s.personalInfo.FindByID(ctx, *row.PersonalInformationID, userID)
		if err == nil {
			dto.PersonalInformation = resources.PersonalInfoFromModel(info)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "expand personal information")
		}
	}

	summaries, err := s.summaries.ListByIDs(ctx, row.ProfessionalSummaryIDs, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "expand professional summaries")
	}
	for i := range summaries {
		dto.ProfessionalSummaries = append(dto.ProfessionalSummaries, *resources.SummaryFromModel(&summaries[i]))
	}

	workExp, err := s.workExp.ListByIDs(ctx, row.WorkExperienceIDs, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "expand work experiences")
	}
	for i := range workExp {
		dto.WorkExperiences = append(dto.WorkExperiences, *resources.WorkExperienceFromModel(&workExp[i]))
	}

	projects, err := s.projects.ListByIDs(ctx, row.ProjectIDs, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "expand projects")
	}
	for i := range projects {
		dto.Projects = append(dto.Projects, *resources.ProjectFromModel(&projects[i]))
	}

	skills, err := s.skills.ListByIDs(ctx, row.SkillIDs, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "expand skills")
	}
	for i := range skills {
		dto.Skills = append(dto.Skills, *resources.SkillFromModel(&skills[i]))
	}

	education, err := s.education.ListByIDs(ctx, row.EducationIDs, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "expand education")
	}
	for i := range education {
		dto.Education = append(dto.Education, *resources.EducationFromModel(&education[i]))
	}

	certifications, err := s.certifications.ListByIDs(ctx, row.CertificationIDs, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "expand certifications")
	}
	for i := range certifications {
		dto.Certifications = append(dto.Certifications, *resources.CertificationFromModel(&certifications[i]))
	}

	return dto, nil
}

func invalidReference(label string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "one or more "+label+" do not exist or do not belong to you")
}

func listOrEmpty(ids []uuid.UUID) dbtypes.UUIDArray {
	if ids == nil {
		return dbtypes.UUIDArray{}
	}
	return dbtypes.UUIDArray(ids)
}
