package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/resumehub/resumehub-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository manages the durable session table. Session rows are the source
// of truth for token liveness: a structurally valid JWT without a live row is
// rejected. Rows are invalidated in place, never deleted.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a sessions repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction handle.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create records a newly issued token.
func (r *Repository) Create(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) (*models.Session, error) {
	session := &models.Session{
		UserID:    userID,
		Token:     token,
		IsActive:  true,
		ExpiresAt: expiresAt,
	}
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// FindLive returns the session for the token when it is active and unexpired.
func (r *Repository) FindLive(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).
		Where("token = ? AND is_active = ? AND expires_at > ?", token, true, time.Now().UTC()).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Invalidate deactivates the session holding the token. The update is
// idempotent: invalidating an unknown or already-dead token is not an error.
func (r *Repository) Invalidate(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("token = ?", token).
		UpdateColumn("is_active", false).Error
}

// InvalidateAllForUser deactivates every session belonging to the user.
func (r *Repository) InvalidateAllForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("user_id = ?", userID).
		UpdateColumn("is_active", false).Error
}
