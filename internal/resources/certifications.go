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

// CreateCertificationRequest carries one certification.
type CreateCertificationRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	URL         *string `json:"url" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,min=20,max=1000"`
}

// UpdateCertificationRequest is a partial update; nil fields are untouched.
type UpdateCertificationRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=255"`
	URL         *string `json:"url" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,min=20,max=1000"`
}

// CertificationDTO is the API shape of a certification.
type CertificationDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	URL         *string   `json:"url,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func CertificationFromModel(m *models.Certification) *CertificationDTO {
	return &CertificationDTO{
		ID:          m.ID,
		Name:        m.Name,
		URL:         m.URL,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CertificationsService manages a user's certifications.
type CertificationsService struct {
	repo *Repository[models.Certification]
}

func NewCertificationsService(conn *gorm.DB) *CertificationsService {
	return &CertificationsService{repo: NewRepository[models.Certification](conn, orderByCreated...)}
}

func (s *CertificationsService) Create(ctx context.Context, userID uuid.UUID, req CreateCertificationRequest) (*CertificationDTO, error) {
	row := &models.Certification{
		UserID:      userID,
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		IsActive:    true,
	}
	if _, err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create certification")
	}
	return CertificationFromModel(row), nil
}

func (s *CertificationsService) List(ctx context.Context, userID uuid.UUID) ([]CertificationDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list certifications")
	}
	out := make([]CertificationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *CertificationFromModel(&rows[i]))
	}
	return out, nil
}

func (s *CertificationsService) Update(ctx context.Context, id, userID uuid.UUID, req UpdateCertificationRequest) (*CertificationDTO, error) {
	if err := validators.ValidateStruct(&req); err != nil {
		return nil, err
	}

	columns := map[string]any{}
	if req.Name != nil {
		columns["name"] = *req.Name
	}
	if req.URL != nil {
		columns["url"] = *req.URL
	}
	if req.Description != nil {
		columns["description"] = *req.Description
	}
	if len(columns) == 0 {
		return nil, errNoFields()
	}

	affected, err := s.repo.UpdateColumns(ctx, id, userID, columns)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update certification")
	}
	if affected == 0 {
		return nil, errNotFound("certification")
	}

	row, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load certification")
	}
	return CertificationFromModel(row), nil
}

func (s *CertificationsService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := s.repo.SoftDelete(ctx, id, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete certification")
	}
	if affected == 0 {
		return errNotFound("certification")
	}
	return nil
}
