package resources

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/resumehub/resumehub-backend/api/validators"
	"github.com/resumehub/resumehub-backend/pkg/db/models"
	pkgerrors "github.com/resumehub/resumehub-backend/pkg/errors"
	"gorm.io/gorm"
)

// CreateSummaryRequest carries one professional summary paragraph.
type CreateSummaryRequest struct {
	Summary string `json:"summary" validate:"required,min=50,max=1000"`
}

// UpdateSummaryRequest is a partial update; nil fields are untouched.
type UpdateSummaryRequest struct {
	Summary *string `json:"summary" validate:"omitempty,min=50,max=1000"`
}

// SummaryDTO is the API shape of a professional summary.
type SummaryDTO struct {
	ID        uuid.UUID `json:"id"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func SummaryFromModel(m *models.ProfessionalSummary) *SummaryDTO {
	return &SummaryDTO{
		ID:        m.ID,
		Summary:   m.Summary,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SummariesService manages a user's professional summaries.
type SummariesService struct {
	repo *Repository[models.ProfessionalSummary]
}

func NewSummariesService(conn *gorm.DB) *SummariesService {
	return &SummariesService{repo: NewRepository[models.ProfessionalSummary](conn, orderByCreated...)}
}

func (s *SummariesService) Create(ctx context.Context, userID uuid.UUID, req CreateSummaryRequest) (*SummaryDTO, error) {
	row := &models.ProfessionalSummary{
		UserID:   userID,
		Summary:  req.Summary,
		IsActive: true,
	}
	if _, err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create summary")
	}
	return SummaryFromModel(row), nil
}

func (s *SummariesService) List(ctx context.Context, userID uuid.UUID) ([]SummaryDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list summaries")
	}
	out := make([]SummaryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *SummaryFromModel(&rows[i]))
	}
	return out, nil
}

func (s *SummariesService) Update(ctx context.Context, id, userID uuid.UUID, req UpdateSummaryRequest) (*SummaryDTO, error) {
	if err := validators.ValidateStruct(&req); err != nil {
		return nil, err
	}

	columns := map[string]any{}
	if req.Summary != nil {
		columns["summary"] = *req.Summary
	}
	if len(columns) == 0 {
		return nil, errNoFields()
	}

	affected, err := s.repo.UpdateColumns(ctx, id, userID, columns)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update summary")
	}
	if affected == 0 {
		return nil, errNotFound("professional summary")
	}

	row, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load summary")
	}
	return SummaryFromModel(row), nil
}

func (s *SummariesService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := s.repo.SoftDelete(ctx, id, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete summary")
	}
	if affected == 0 {
		return errNotFound("professional summary")
	}
	return nil
}
