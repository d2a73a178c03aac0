package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/resumehub/resumehub-backend/api/middleware"
	"github.com/resumehub/resumehub-backend/internal/auth"
	"github.com/resumehub/resumehub-backend/internal/users"
	pkgAuth "github.com/resumehub/resumehub-backend/pkg/auth"
	"github.com/resumehub/resumehub-backend/pkg/config"
	pkgerrors "github.com/resumehub/resumehub-backend/pkg/errors"
	"github.com/resumehub/resumehub-backend/pkg/types"
)

type stubAuthService struct {
	response *auth.AuthResponse
	profile  *users.DTO
	err      error

	logoutToken string
}

func (s *stubAuthService) Register(_ context.Context, _ auth.RegisterRequest) (*auth.AuthResponse, error) {
	return s.response, s.err
}

func (s *stubAuthService) Login(_ context.Context, _ auth.LoginRequest) (*auth.AuthResponse, error) {
	return s.response, s.err
}

func (s *stubAuthService) GoogleLogin(_ context.Context, _ string) (*auth.AuthResponse, error) {
	return s.response, s.err
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.logoutToken = token
	if strings.TrimSpace(token) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "token is required")
	}
	return s.err
}

func (s *stubAuthService) Profile(_ context.Context, _ uuid.UUID) (*users.DTO, error) {
	return s.profile, s.err
}

func controllerTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "development"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "resumehub", ExpirationMinutes: 30},
	}
}

func sessionResponse() *auth.AuthResponse {
	return &auth.AuthResponse{
		User:      users.DTO{ID: uuid.New(), Username: "jordan", Email: "jordan@example.com"},
		Token:     "issued-token",
		ExpiresIn: 30,
	}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) types.Envelope {
	t.Helper()
	var envelope types.Envelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return envelope
}

func authCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == pkgAuth.CookieName {
			return c
		}
	}
	return nil
}

func TestAuthRegister(t *testing.T) {
	svc := &stubAuthService{response: sessionResponse()}
	handler := AuthRegister(svc, controllerTestConfig(), nil)

	body := `{"username":"jordan","name":"Jordan Smith","email":"jordan@example.com","password":"correct-horse"}`
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("POST", "/auth/register", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if !envelope.Success || envelope.Message != "registration successful" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}

	cookie := authCookie(rec)
	if cookie == nil {
		t.Fatal("expected auth cookie to be set")
	}
	if cookie.Value != "issued-token" || !cookie.HttpOnly || cookie.MaxAge != 30*60 {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
}

func TestAuthRegisterInvalidBody(t *testing.T) {
	svc := &stubAuthService{response: sessionResponse()}
	handler := AuthRegister(svc, controllerTestConfig(), nil)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{"username":"x"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Success || len(envelope.Errors) == 0 {
		t.Fatalf("expected field errors, got %+v", envelope)
	}
}

func TestAuthLogin(t *testing.T) {
	svc := &stubAuthService{response: sessionResponse()}
	handler := AuthLogin(svc, controllerTestConfig(), nil)

	body := `{"email":"jordan@example.com","password":"correct-horse"}`
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if !envelope.Success || envelope.Message != "login successful" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if authCookie(rec) == nil {
		t.Fatal("expected auth cookie to be set")
	}
}

func TestAuthLoginFailure(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")}
	handler := AuthLogin(svc, controllerTestConfig(), nil)

	body := `{"email":"jordan@example.com","password":"wrong"}`
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(body)))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Success || envelope.Message != "invalid email or password" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if authCookie(rec) != nil {
		t.Fatal("cookie must not be set on failed login")
	}
}

func TestAuthLogoutTokenSources(t *testing.T) {
	tests := []struct {
		name     string
		decorate func(*http.Request)
		want     string
	}{
		{
			name: "authorization header wins",
			decorate: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-token")
				r.AddCookie(&http.Cookie{Name: pkgAuth.CookieName, Value: "cookie-token"})
			},
			want: "header-token",
		},
		{
			name: "body token beats cookie",
			decorate: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: pkgAuth.CookieName, Value: "cookie-token"})
			},
			want: "body-token",
		},
		{
			name: "cookie is the fallback",
			decorate: func(r *http.Request) {
				r.Body = http.NoBody
				r.AddCookie(&http.Cookie{Name: pkgAuth.CookieName, Value: "cookie-token"})
			},
			want: "cookie-token",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubAuthService{}
			handler := AuthLogout(svc, controllerTestConfig(), nil)

			body := `{"token":"body-token"}`
			r := httptest.NewRequest("POST", "/auth/logout", strings.NewReader(body))
			tc.decorate(r)

			rec := httptest.NewRecorder()
			handler(rec, r)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if svc.logoutToken != tc.want {
				t.Fatalf("expected token %q, got %q", tc.want, svc.logoutToken)
			}

			cookie := authCookie(rec)
			if cookie == nil || cookie.MaxAge != -1 {
				t.Fatalf("expected expired auth cookie, got %+v", cookie)
			}
		})
	}
}

func TestAuthLogoutWithoutToken(t *testing.T) {
	svc := &stubAuthService{}
	handler := AuthLogout(svc, controllerTestConfig(), nil)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("POST", "/auth/logout", http.NoBody))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Success || envelope.Message != "token is required" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestAuthProfile(t *testing.T) {
	userID := uuid.New()
	svc := &stubAuthService{profile: &users.DTO{ID: userID, Username: "jordan"}}
	handler := AuthProfile(svc, nil)

	r := httptest.NewRequest("GET", "/auth/profile", nil)
	r = r.WithContext(middleware.WithUserID(r.Context(), userID.String()))

	rec := httptest.NewRecorder()
	handler(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if !envelope.Success {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestAuthProfileWithoutContext(t *testing.T) {
	svc := &stubAuthService{profile: &users.DTO{}}
	handler := AuthProfile(svc, nil)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/auth/profile", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
