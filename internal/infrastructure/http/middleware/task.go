package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
)

// TaskResolver loads the task named by the {taskId} path segment, verifies it
// belongs to the already-resolved project, and puts it in context. A task
// addressed under the wrong project is an invalid action, not a not-found.
type TaskResolver struct {
	tasks ports.TaskRepository
}

func NewTaskResolver(tasks ports.TaskRepository) *TaskResolver {
	return &TaskResolver{tasks: tasks}
}

func (m *TaskResolver) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "taskId"))
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid task id")
			return
		}
		task, err := m.tasks.GetByID(r.Context(), domain.NewTaskID(id))
		if err != nil {
			writeErr(w, http.StatusInternalServerError, "internal error")
			return
		}
		if task == nil {
			writeErr(w, http.StatusNotFound, "task not found")
			return
		}
		project := ProjectFromContext(r.Context())
		if project == nil {
			writeErr(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !task.BelongsTo(project.ID) {
			writeErr(w, http.StatusForbidden, "invalid action")
			return
		}
		ctx := WithTask(r.Context(), task)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
