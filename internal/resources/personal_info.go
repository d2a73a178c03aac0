package resources

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/resumehub/resumehub-backend/api/validators"
	"github.com/resumehub/resumehub-backend/pkg/db"
	"github.com/resumehub/resumehub-backend/pkg/db/models"
	dbtypes "github.com/resumehub/resumehub-backend/pkg/db/types"
	pkgerrors "github.com/resumehub/resumehub-backend/pkg/errors"
	"gorm.io/gorm"
)

const personalInfoConflictMessage = "personal information already exists for this user"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// CreatePersonalInfoRequest carries the contact header fields.
type CreatePersonalInfoRequest struct {
	FullName          string            `json:"full_name" validate:"required,min=2,max=100"`
	ProfessionalTitle string            `json:"professional_title" validate:"required,min=2,max=255"`
	Email             string            `json:"email" validate:"required,email"`
	PhoneNumber       *string           `json:"phone_number" validate:"omitempty,phone"`
	Location          *string           `json:"location" validate:"omitempty,max=255"`
	SocialMediaURLs   map[string]string `json:"social_media_urls" validate:"omitempty,dive,url"`
}

// UpdatePersonalInfoRequest is a partial update; nil fields are untouched.
type UpdatePersonalInfoRequest struct {
	FullName          *string           `json:"full_name" validate:"omitempty,min=2,max=100"`
	ProfessionalTitle *string           `json:"professional_title" validate:"omitempty,min=2,max=255"`
	Email             *string           `json:"email" validate:"omitempty,email"`
	PhoneNumber       *string           `json:"phone_number" validate:"omitempty,phone"`
	Location          *string           `json:"location" validate:"omitempty,max=255"`
	SocialMediaURLs   map[string]string `json:"social_media_urls" validate:"omitempty,dive,url"`
}

// PersonalInfoDTO is the API shape of the contact header.
type PersonalInfoDTO struct {
	ID                uuid.UUID         `json:"id"`
	FullName          string            `json:"full_name"`
	ProfessionalTitle string            `json:"professional_title"`
	Email             string            `json:"email"`
	PhoneNumber       *string           `json:"phone_number,omitempty"`
	Location          *string           `json:"location,omitempty"`
	SocialMediaURLs   map[string]string `json:"social_media_urls"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func PersonalInfoFromModel(m *models.PersonalInformation) *PersonalInfoDTO {
	urls := map[string]string(m.SocialMediaURLs)
	if urls == nil {
		urls = map[string]string{}
	}
	return &PersonalInfoDTO{
		ID:                m.ID,
		FullName:          m.FullName,
		ProfessionalTitle: m.ProfessionalTitle,
		Email:             m.Email,
		PhoneNumber:       m.PhoneNumber,
		Location:          m.Location,
		SocialMediaURLs:   urls,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// PersonalInfoService manages the per-user singleton contact header.
type PersonalInfoService struct {
	tx   txRunner
	repo *Repository[models.PersonalInformation]
}

// NewPersonalInfoService constructs the service over the shared connection.
func NewPersonalInfoService(tx txRunner, conn *gorm.DB) *PersonalInfoService {
	return &PersonalInfoService{
		tx:   tx,
		repo: NewRepository[models.PersonalInformation](conn, orderByCreated...),
	}
}

// Create inserts the user's contact header. The existence check and the
// insert share a transaction; the partial unique index on user_id is the
// backstop for concurrent creates.
func (s *PersonalInfoService) Create(ctx context.Context, userID uuid.UUID, req CreatePersonalInfoRequest) (*PersonalInfoDTO, error) {
	row := &models.PersonalInformation{
		UserID:            userID,
		FullName:          req.FullName,
		ProfessionalTitle: req.ProfessionalTitle,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		Location:          req.Location,
		SocialMediaURLs:   socialURLsMap(req.SocialMediaURLs),
		IsActive:          true,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		count, err := txRepo.CountByUser(ctx, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check personal information")
		}
		if count > 0 {
			return pkgerrors.New(pkgerrors.CodeConflict, personalInfoConflictMessage)
		}

		if _, err := txRepo.Create(ctx, row); err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, personalInfoConflictMessage)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create personal information")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return PersonalInfoFromModel(row), nil
}

// Get returns the user's contact header.
func (s *PersonalInfoService) Get(ctx context.Context, userID uuid.UUID) (*PersonalInfoDTO, error) {
	row, err := s.repo.FindFirstByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("personal information")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load personal information")
	}
	return PersonalInfoFromModel(row), nil
}

// Update applies the provided fields to the user's contact header.
func (s *PersonalInfoService) Update(ctx context.Context, userID uuid.UUID, req UpdatePersonalInfoRequest) (*PersonalInfoDTO, error) {
	if err := validators.ValidateStruct(&req); err != nil {
		return nil, err
	}

	columns := map[string]any{}
	if req.FullName != nil {
		columns["full_name"] = *req.FullName
	}
	if req.ProfessionalTitle != nil {
		columns["professional_title"] = *req.ProfessionalTitle
	}
	if req.Email != nil {
		columns["email"] = *req.Email
	}
	if req.PhoneNumber != nil {
		columns["phone_number"] = *req.PhoneNumber
	}
	if req.Location != nil {
		columns["location"] = *req.Location
	}
	if req.SocialMediaURLs != nil {
		columns["social_media_urls"] = socialURLsMap(req.SocialMediaURLs)
	}
	if len(columns) == 0 {
		return nil, errNoFields()
	}

	row, err := s.repo.FindFirstByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("personal information")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load personal information")
	}

	affected, err := s.repo.UpdateColumns(ctx, row.ID, userID, columns)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update personal information")
	}
	if affected == 0 {
		return nil, errNotFound("personal information")
	}
	return s.Get(ctx, userID)
}

// Delete soft-deletes the user's contact header.
func (s *PersonalInfoService) Delete(ctx context.Context, userID uuid.UUID) error {
	row, err := s.repo.FindFirstByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("personal information")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load personal information")
	}

	affected, err := s.repo.SoftDelete(ctx, row.ID, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete personal information")
	}
	if affected == 0 {
		return errNotFound("personal information")
	}
	return nil
}

func socialURLsMap(urls map[string]string) dbtypes.JSONMap {
	if urls == nil {
		return dbtypes.JSONMap{}
	}
	return dbtypes.JSONMap(urls)
}
