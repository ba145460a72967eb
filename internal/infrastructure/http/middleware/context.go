package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/DiegoRoNa/uptask-api/internal/domain"
)

type contextKey string

const (
	userContextKey    contextKey = "user"
	projectContextKey contextKey = "project"
	taskContextKey    contextKey = "task"
)

// WithUser injects the authenticated user into the context.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user from the context, or nil.
func UserFromContext(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userContextKey).(*domain.User)
	return u
}

// WithProject injects the resolved project into the context.
func WithProject(ctx context.Context, project *domain.Project) context.Context {
	return context.WithValue(ctx, projectContextKey, project)
}

// ProjectFromContext returns the resolved project from the context, or nil.
func ProjectFromContext(ctx context.Context) *domain.Project {
	p, _ := ctx.Value(projectContextKey).(*domain.Project)
	return p
}

// WithTask injects the resolved task into the context.
func WithTask(ctx context.Context, task *domain.Task) context.Context {
	return context.WithValue(ctx, taskContextKey, task)
}

// TaskFromContext returns the resolved task from the context, or nil.
func TaskFromContext(ctx context.Context) *domain.Task {
	t, _ := ctx.Value(taskContextKey).(*domain.Task)
	return t
}

// writeErr emits the same {"error","code"} body shape the handlers use, with
// the machine code derived from the HTTP status.
func writeErr(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
		"code":  errCodeForStatus(code),
	})
}

func errCodeForStatus(httpCode int) string {
	switch httpCode {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	default:
		return "internal_error"
	}
}
