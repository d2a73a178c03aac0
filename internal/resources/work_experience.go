package resources

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/resumehub/resumehub-backend/api/validators"
	"github.com/resumehub/resumehub-backend/pkg/db/models"
	pkgerrors "github.com/resumehub/resumehub-backend/pkg/errors"
	"github.com/resumehub/resumehub-backend/pkg/types"
	"gorm.io/gorm"
)

// CreateWorkExperienceRequest carries one employment entry. A current
// position carries no end date; a past one requires it.
type CreateWorkExperienceRequest struct {
	Title       string      `json:"title" validate:"required,min=2,max=255"`
	Name        string      `json:"name" validate:"required,min=2,max=255"`
	URL         *string     `json:"url" validate:"omitempty,url"`
	Location    *string     `json:"location" validate:"omitempty,max=255"`
	StartDate   types.Date  `json:"start_date"`
	EndDate     *types.Date `json:"end_date"`
	IsCurrent   bool        `json:"is_current"`
	Description *string     `json:"description" validate:"omitempty,min=20,max=2000"`
}

// UpdateWorkExperienceRequest is a partial update; nil fields are untouched.
type UpdateWorkExperienceRequest struct {
	Title       *string     `json:"title" validate:"omitempty,min=2,max=255"`
	Name        *string     `json:"name" validate:"omitempty,min=2,max=255"`
	URL         *string     `json:"url" validate:"omitempty,url"`
	Location    *string     `json:"location" validate:"omitempty,max=255"`
	StartDate   *types.Date `json:"start_date"`
	EndDate     *types.Date `json:"end_date"`
	IsCurrent   *bool       `json:"is_current"`
	Description *string     `json:"description" validate:"omitempty,min=20,max=2000"`
}

// WorkExperienceDTO is the API shape of an employment entry.
type WorkExperienceDTO struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Name        string      `json:"name"`
	URL         *string     `json:"url,omitempty"`
	Location    *string     `json:"location,omitempty"`
	StartDate   types.Date  `json:"start_date"`
	EndDate     *types.Date `json:"end_date,omitempty"`
	IsCurrent   bool        `json:"is_current"`
	Description *string     `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func WorkExperienceFromModel(m *models.WorkExperience) *WorkExperienceDTO {
	dto := &WorkExperienceDTO{
		ID:          m.ID,
		Title:       m.Title,
		Name:        m.Name,
		URL:         m.URL,
		Location:    m.Location,
		StartDate:   types.NewDate(m.StartDate),
		IsCurrent:   m.IsCurrent,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.EndDate != nil {
		end := types.NewDate(*m.EndDate)
		dto.EndDate = &end
	}
	return dto
}

// WorkExperiencesService manages a user's employment history.
type WorkExperiencesService struct {
	repo *Repository[models.WorkExperience]
}

func NewWorkExperiencesService(conn *gorm.DB) *WorkExperiencesService {
	return &WorkExperiencesService{repo: NewRepository[models.WorkExperience](conn, orderByStartDate...)}
}

func (s *WorkExperiencesService) Create(ctx context.Context, userID uuid.UUID, req CreateWorkExperienceRequest) (*WorkExperienceDTO, error) {
	var end *time.Time
	if req.EndDate != nil {
		t := req.EndDate.Time
		end = &t
	}
	if err := validateWorkExperienceDates(req.StartDate.Time, end, req.IsCurrent); err != nil {
		return nil, err
	}

	row := &models.WorkExperience{
		UserID:      userID,
		Title:       req.Title,
		Name:        req.Name,
		URL:         req.URL,
		Location:    req.Location,
		StartDate:   req.StartDate.Time,
		EndDate:     end,
		IsCurrent:   req.IsCurrent,
		Description: req.Description,
		IsActive:    true,
	}
	if _, err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create work experience")
	}
	return WorkExperienceFromModel(row), nil
}

func (s *WorkExperiencesService) List(ctx context.Context, userID uuid.UUID) ([]WorkExperienceDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list work experiences")
	}
	out := make([]WorkExperienceDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *WorkExperienceFromModel(&rows[i]))
	}
	return out, nil
}

// Update merges the provided fields over the stored row and re-validates the
// merged date rules, so a partial update cannot leave a current position with
// an end date or a past one without.
func (s *WorkExperiencesService) Update(ctx context.Context, id, userID uuid.UUID, req UpdateWorkExperienceRequest) (*WorkExperienceDTO, error) {
	if err := validators.ValidateStruct(&req); err != nil {
		return nil, err
	}

	row, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("work experience")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load work experience")
	}

	columns := map[string]any{}
	if req.Title != nil {
		columns["title"] = *req.Title
	}
	if req.Name != nil {
		columns["name"] = *req.Name
	}
	if req.URL != nil {
		columns["url"] = *req.URL
	}
	if req.Location != nil {
		columns["location"] = *req.Location
	}
	if req.Description != nil {
		columns["description"] = *req.Description
	}

	merged := *row
	if req.StartDate != nil {
		merged.StartDate = req.StartDate.Time
		columns["start_date"] = merged.StartDate
	}
	if req.EndDate != nil {
		t := req.EndDate.Time
		merged.EndDate = &t
		columns["end_date"] = t
	}
	if req.IsCurrent != nil {
		merged.IsCurrent = *req.IsCurrent
		columns["is_current"] = merged.IsCurrent
	}
	if len(columns) == 0 {
		return nil, errNoFields()
	}

	// Explicitly marking a position current drops any stored end date. A
	// request that only sets an end date on a current position still fails
	// the exclusivity check below.
	if req.IsCurrent != nil && *req.IsCurrent && req.EndDate == nil {
		merged.EndDate = nil
		columns["end_date"] = nil
	}
	if err := validateWorkExperienceDates(merged.StartDate, merged.EndDate, merged.IsCurrent); err != nil {
		return nil, err
	}

	affected, err := s.repo.UpdateColumns(ctx, id, userID, columns)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update work experience")
	}
	if affected == 0 {
		return nil, errNotFound("work experience")
	}

	updated, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load work experience")
	}
	return WorkExperienceFromModel(updated), nil
}

func (s *WorkExperiencesService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := s.repo.SoftDelete(ctx, id, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete work experience")
	}
	if affected == 0 {
		return errNotFound("work experience")
	}
	return nil
}

func validateWorkExperienceDates(start time.Time, end *time.Time, isCurrent bool) error {
	if isCurrent && end != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails("end_date must be empty for a current position")
	}
	if !isCurrent && end == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails("end_date is required unless the position is current")
	}
	return validateDateRange(start, end)
}
