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

// CreateProjectRequest carries one portfolio project.
type CreateProjectRequest struct {
	Title       string      `json:"title" validate:"required,min=2,max=255"`
	URL         *string     `json:"url" validate:"omitempty,url"`
	StartDate   types.Date  `json:"start_date"`
	EndDate     *types.Date `json:"end_date"`
	Description string      `json:"description" validate:"required,min=20,max=2000"`
}

// UpdateProjectRequest is a partial update; nil fields are untouched.
type UpdateProjectRequest struct {
	Title       *string     `json:"title" validate:"omitempty,min=2,max=255"`
	URL         *string     `json:"url" validate:"omitempty,url"`
	StartDate   *types.Date `json:"start_date"`
	EndDate     *types.Date `json:"end_date"`
	Description *string     `json:"description" validate:"omitempty,min=20,max=2000"`
}

// ProjectDTO is the API shape of a project.
type ProjectDTO struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	URL         *string     `json:"url,omitempty"`
	StartDate   types.Date  `json:"start_date"`
	EndDate     *types.Date `json:"end_date,omitempty"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func ProjectFromModel(m *models.Project) *ProjectDTO {
	dto := &ProjectDTO{
		ID:          m.ID,
		Title:       m.Title,
		URL:         m.URL,
		StartDate:   types.NewDate(m.StartDate),
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

// ProjectsService manages a user's portfolio projects.
type ProjectsService struct {
	repo *Repository[models.Project]
}

func NewProjectsService(conn *gorm.DB) *ProjectsService {
	return &ProjectsService{repo: NewRepository[models.Project](conn, orderByStartDate...)}
}

func (s *ProjectsService) Create(ctx context.Context, userID uuid.UUID, req CreateProjectRequest) (*ProjectDTO, error) {
	var end *time.Time
	if req.EndDate != nil {
		t := req.EndDate.Time
		end = &t
	}
	if err := validateDateRange(req.StartDate.Time, end); err != nil {
		return nil, err
	}

	row := &models.Project{
		UserID:      userID,
		Title:       req.Title,
		URL:         req.URL,
		StartDate:   req.StartDate.Time,
		EndDate:     end,
		Description: req.Description,
		IsActive:    true,
	}
	if _, err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create project")
	}
	return ProjectFromModel(row), nil
}

func (s *ProjectsService) List(ctx context.Context, userID uuid.UUID) ([]ProjectDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list projects")
	}
	out := make([]ProjectDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *ProjectFromModel(&rows[i]))
	}
	return out, nil
}

// Update merges the provided fields over the stored row and re-validates the
// merged date range.
func (s *ProjectsService) Update(ctx context.Context, id, userID uuid.UUID, req UpdateProjectRequest) (*ProjectDTO, error) {
	if err := validators.ValidateStruct(&req); err != nil {
		return nil, err
	}

	row, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("project")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load project")
	}

	columns := map[string]any{}
	if req.Title != nil {
		columns["title"] = *req.Title
	}
	if req.URL != nil {
		columns["url"] = *req.URL
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
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update project")
	}
	if affected == 0 {
		return nil, errNotFound("project")
	}

	updated, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load project")
	}
	return ProjectFromModel(updated), nil
}

func (s *ProjectsService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := s.repo.SoftDelete(ctx, id, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete project")
	}
	if affected == 0 {
		return errNotFound("project")
	}
	return nil
}
