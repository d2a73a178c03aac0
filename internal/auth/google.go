package auth

import (
	"context"
	"errors"
	"strings"

	pkgAuth "github.com/resumehub/resumehub-backend/pkg/auth"
	"github.com/resumehub/resumehub-backend/pkg/db"
	"github.com/resumehub/resumehub-backend/pkg/db/models"
	pkgerrors "github.com/resumehub/resumehub-backend/pkg/errors"
	"github.com/resumehub/resumehub-backend/pkg/oauth"
	"github.com/resumehub/resumehub-backend/pkg/security"
	"gorm.io/gorm"
)

const oauthPasswordLength = 32

// GoogleLogin exchanges the authorization code, then finds or provisions the
// account matching the Google profile's email and issues a session for it.
func (s *service) GoogleLogin(ctx context.Context, code string) (*AuthResponse, error) {
	if s.google == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "google authentication is not configured")
	}
	if strings.TrimSpace(code) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "authorization code is required")
	}

	info, err := s.google.Exchange(ctx, code)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "google authentication failed")
	}

	email := strings.ToLower(strings.TrimSpace(info.Email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
		}
		user, err = s.provisionGoogleUser(ctx, info, email)
		if err != nil {
			return nil, err
		}
	}

	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	return s.issueSession(ctx, user)
}

func (s *service) provisionGoogleUser(ctx context.Context, info *oauth.UserInfo, email string) (*models.User, error) {
	// Accounts created through OAuth get a random credential; password login
	// stays possible only after a reset.
	password, err := security.GenerateRandomPassword(oauthPasswordLength)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate password")
	}
	hash, err := security.HashPassword(password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = localPart(email)
	}

	user := &models.User{
		Username:     googleUsername(email, info.ID),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         string(pkgAuth.RoleUser),
		IsActive:     true,
	}

	txErr := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.users.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		return nil
	})
	if txErr == nil {
		return user, nil
	}

	// A concurrent callback may have provisioned the same account; fall back
	// to the winner's row.
	if db.IsUniqueViolation(txErr, "") {
		existing, err := s.users.FindByEmail(ctx, email)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
		}
		return existing, nil
	}
	return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, txErr, "create user")
}

// googleUsername derives a collision-resistant username from the email local
// part and the tail of the Google subject id.
func googleUsername(email, googleID string) string {
	suffix := googleID
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return localPart(email) + "_" + suffix
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
