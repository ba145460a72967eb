package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
)

// SessionValidator validates the bearer session credential and resolves the
// signed user id to a live account, which downstream stages read via
// UserFromContext. A credential whose user no longer exists is rejected.
type SessionValidator struct {
	issuer ports.SessionIssuer
	users  ports.UserRepository
}

func NewSessionValidator(issuer ports.SessionIssuer, users ports.UserRepository) *SessionValidator {
	return &SessionValidator{issuer: issuer, users: users}
}

func (m *SessionValidator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			writeErr(w, http.StatusUnauthorized, "missing or invalid authorization")
			return
		}
		tokenString := strings.TrimPrefix(auth, "Bearer ")
		userID, err := m.issuer.ValidateSession(tokenString)
		if err != nil {
			writeErr(w, http.StatusUnauthorized, "invalid token")
			return
		}
		id, err := uuid.Parse(userID)
		if err != nil {
			writeErr(w, http.StatusUnauthorized, "invalid token")
			return
		}
		user, err := m.users.GetByID(r.Context(), domain.NewUserID(id))
		if err != nil {
			writeErr(w, http.StatusInternalServerError, "internal error")
			return
		}
		if user == nil {
			writeErr(w, http.StatusUnauthorized, "invalid token")
			return
		}
		ctx := WithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
