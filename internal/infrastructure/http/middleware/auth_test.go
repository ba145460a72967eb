package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/DiegoRoNa/uptask-api/internal/domain"
)

type stubIssuer struct {
	userID string
	err    error
}

func (s stubIssuer) IssueSession(userID string, expiresInSeconds int64) (string, error) {
	return "", nil
}

func (s stubIssuer) ValidateSession(tokenString string) (string, error) {
	return s.userID, s.err
}

// stubUsers serves GetByID from a single user; the write methods are never
// reached from middleware.
type stubUsers struct {
	user *domain.User
}

func (s stubUsers) Create(ctx context.Context, user *domain.User) error { return nil }

func (s stubUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, nil
}

func (s stubUsers) GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	if s.user != nil && s.user.ID == userID {
		return s.user, nil
	}
	return nil, nil
}

func (s stubUsers) UpdateProfile(ctx context.Context, userID domain.UserID, name, email string) error {
	return nil
}

func (s stubUsers) UpdatePassword(ctx context.Context, userID domain.UserID, passwordHash string) error {
	return nil
}

func (s stubUsers) SetConfirmed(ctx context.Context, userID domain.UserID) error { return nil }

func okHandler(t *testing.T, sawUser *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFromContext(r.Context()) != nil {
			*sawUser = true
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionValidatorMissingHeader(t *testing.T) {
	v := NewSessionValidator(stubIssuer{}, stubUsers{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	var sawUser bool
	v.Handler(okHandler(t, &sawUser)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got %d, want 401", rec.Code)
	}
	if sawUser {
		t.Error("handler must not run without credentials")
	}
}

func TestSessionValidatorBadToken(t *testing.T) {
	v := NewSessionValidator(stubIssuer{err: errors.New("bad signature")}, stubUsers{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nope")

	v.Handler(http.NotFoundHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got %d, want 401", rec.Code)
	}
}

func TestSessionValidatorDeletedUser(t *testing.T) {
	// Token is valid but its user no longer exists.
	v := NewSessionValidator(stubIssuer{userID: uuid.NewString()}, stubUsers{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")

	v.Handler(http.NotFoundHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got %d, want 401", rec.Code)
	}
}

func TestSessionValidatorSuccess(t *testing.T) {
	user := &domain.User{
		ID:        domain.NewUserID(uuid.New()),
		Name:      "Diego",
		Email:     "diego@example.com",
		Confirmed: true,
		CreatedAt: time.Now(),
	}
	v := NewSessionValidator(stubIssuer{userID: user.ID.String()}, stubUsers{user: user})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")

	var sawUser bool
	v.Handler(okHandler(t, &sawUser)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("got %d, want 200", rec.Code)
	}
	if !sawUser {
		t.Error("user should be in context")
	}
}
