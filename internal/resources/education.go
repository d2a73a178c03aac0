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

// CreateEducationRequest carries one education entry.
type CreateEducationRequest struct {
	Degree      string      `json:"degree" validate:"required,min=2,max=255"`
	Name        string      `json:"name" validate:"required,min=2,max=255"`
	URL         *string     `json:"url" validate:"omitempty,url"`
	StartDate   types.Date  `json:"start_date"`
	EndDate     *types.Date `json:"end_date"`
	Location    string      `json:"location" validate:"required,min=2,max=255"`
	Description *string     `json:"description" validate:"omitempty,min=20,max=1000"`
}

// UpdateEducationRequest is a partial update; nil fields are untouched.
type UpdateEducationRequest struct {
	Degree      *string     `json:"degree" validate:"omitempty,min=2,max=255"`
	Name        *string     `json:"name" validate:"omitempty,min=2,max=255"`
	URL         *string     `json:"url" validate:"omitempty,url"`
	StartDate   *types.Date `json:"start_date"`
	EndDate     *types.Date `json:"end_date"`
	Location    *string     `json:"location" validate:"omitempty,min=2,max=255"`
	Description *string     `json:"description" validate:"omitempty,min=20,max=1000"`
}

// EducationDTO is the API shape of an education entry.
type EducationDTO struct {
	ID          uuid.UUID   `json:"id"`
	Degree      string      `json:"degree"`
	Name        string      `json:"name"`
	URL         *string     `json:"url,omitempty"`
	StartDate   types.Date  `json:"start_date"`
	EndDate     *types.Date `json:"end_date,omitempty"`
	Location    string      `json:"location"`
	Description *string     `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func EducationFromModel(m *models.Education) *EducationDTO {
	dto := &EducationDTO{
		ID:          m.ID,
		Degree:      m.Degree,
		Name:        m.Name,
		URL:         m.URL,
		StartDate:   types.NewDate(m.StartDate),
		Location:    m.Location,
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

// EducationService manages a user's education entries.
type EducationService struct {
	repo *Repository[models.Education]
}

func NewEducationService(conn *gorm.DB) *EducationService {
	return &EducationService{repo: NewRepository[models.Education](conn, orderByStartDate...)}
}

func (s *EducationService) Create(ctx context.Context, userID uuid.UUID, req CreateEducationRequest) (*EducationDTO, error) {
	var end *time.Time
	if req.EndDate != nil {
		t := req.EndDate.Time
		end = &t
	}
	if err := validateDateRange(req.StartDate.Time, end); err != nil {
		return nil, err
	}

	row := &models.Education{
		UserID:      userID,
		Degree:      req.Degree,
		Name:        req.Name,
		URL:         req.URL,
		StartDate:   req.StartDate.Time,
		EndDate:     end,
		Location:    req.Location,
		Description: req.Description,
		IsActive:    true,
	}
	if _, err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create education")
	}
	return EducationFromModel(row), nil
}

func (s *EducationService) List(ctx context.Context, userID uuid.UUID) ([]EducationDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list education")
	}
	out := make([]EducationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *EducationFromModel(&rows[i]))
	}
	return out, nil
}

// Update merges the provided fields over the stored row and re-validates the
// merged date range.
func (s *EducationService) Update(ctx context.Context, id, userID uuid.UUID, req UpdateEducationRequest) (*EducationDTO, error) {
	if err := validators.ValidateStruct(&req); err != nil {
		return nil, err
	}

	row, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("education")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load education")
	}

	columns := map[string]any{}
	if req.Degree != nil {
		columns["degree"] = *req.Degree
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
	if len(columns) == 0 {
		return nil, errNoFields()
	}
	if err := validateDateRange(merged.StartDate, merged.EndDate); err != nil {
		return nil, err
	}

	affected, err := s.repo.UpdateColumns(ctx, id, userID, columns)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update education")
	}
	if affected == 0 {
		return nil, errNotFound("education")
	}

	updated, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load education")
	}
	return EducationFromModel(updated), nil
}

func (s *EducationService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := s.repo.SoftDelete(ctx, id, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete education")
	}
	if affected == 0 {
		return errNotFound("education")
	}
	return nil
}
