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

// CreateSkillRequest carries one skill with an optional 1-5 proficiency.
type CreateSkillRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Level *int   `json:"level" validate:"omitempty,min=1,max=5"`
}

// UpdateSkillRequest is a partial update; nil fields are untouched.
type UpdateSkillRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Level *int    `json:"level" validate:"omitempty,min=1,max=5"`
}

// SkillDTO is the API shape of a skill.
type SkillDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Level     *int      `json:"level,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func SkillFromModel(m *models.Skill) *SkillDTO {
	return &SkillDTO{
		ID:        m.ID,
		Name:      m.Name,
		Level:     m.Level,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SkillsService manages a user's skills.
type SkillsService struct {
	repo *Repository[models.Skill]
}

func NewSkillsService(conn *gorm.DB) *SkillsService {
	return &SkillsService{repo: NewRepository[models.Skill](conn, orderByNameThenDate...)}
}

func (s *SkillsService) Create(ctx context.Context, userID uuid.UUID, req CreateSkillRequest) (*SkillDTO, error) {
	row := &models.Skill{
		UserID:   userID,
		Name:     req.Name,
		Level:    req.Level,
		IsActive: true,
	}
	if _, err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create skill")
	}
	return SkillFromModel(row), nil
}

func (s *SkillsService) List(ctx context.Context, userID uuid.UUID) ([]SkillDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list skills")
	}
	out := make([]SkillDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *SkillFromModel(&rows[i]))
	}
	return out, nil
}

func (s *SkillsService) Update(ctx context.Context, id, userID uuid.UUID, req UpdateSkillRequest) (*SkillDTO, error) {
	if err := validators.ValidateStruct(&req); err != nil {
		return nil, err
	}

	columns := map[string]any{}
	if req.Name != nil {
		columns["name"] = *req.Name
	}
	if req.Level != nil {
		columns["level"] = *req.Level
	}
	if len(columns) == 0 {
		return nil, errNoFields()
	}

	affected, err := s.repo.UpdateColumns(ctx, id, userID, columns)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update skill")
	}
	if affected == 0 {
		return nil, errNotFound("skill")
	}

	row, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load skill")
	}
	return SkillFromModel(row), nil
}

func (s *SkillsService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := s.repo.SoftDelete(ctx, id, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete skill")
	}
	if affected == 0 {
		return errNotFound("skill")
	}
	return nil
}
