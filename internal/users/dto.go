package users

import (
	"time"

	"github.com/google/uuid"
	"github.com/resumehub/resumehub-backend/pkg/db/models"
)

// DTO is the client-facing projection of a user. The password hash never
// leaves the service layer.
type DTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModel maps the persistence model onto the client projection.
func FromModel(user *models.User) DTO {
	if user == nil {
		return DTO{}
	}
	return DTO{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
