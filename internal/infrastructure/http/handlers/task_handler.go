package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/http/middleware"
)

// TaskHandler serves task CRUD and status changes under a resolved project.
// New tasks start pending; every status change appends to the task's history.
type TaskHandler struct {
	tasks    ports.TaskRepository
	notes    ports.NoteRepository
	validate *validator.Validate
	log      zerolog.Logger
}

func NewTaskHandler(tasks ports.TaskRepository, notes ports.NoteRepository, log zerolog.Logger) *TaskHandler {
	return &TaskHandler{
		tasks:    tasks,
		notes:    notes,
		validate: validator.New(),
		log:      log,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	project := middleware.ProjectFromContext(r.Context())
	if project == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	var body struct {
		Name        string `json:"name" validate:"required,max=200"`
		Description string `json:"description" validate:"required,max=5000"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	task := &domain.Task{
		ID:          domain.NewTaskID(uuid.New()),
		ProjectID:   project.ID,
		Name:        SanitizeText(body.Name),
		Description: SanitizeText(body.Description),
		Status:      domain.StatusPending,
	}
	if err := h.tasks.Create(r.Context(), task); err != nil {
		h.log.Error().Err(err).Msg("create task failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "task created",
		"task":    newTaskView(task),
	})
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	project := middleware.ProjectFromContext(r.Context())
	if project == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	tasks, err := h.tasks.ListByProject(r.Context(), project.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list tasks failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, newTaskViews(tasks))
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task := middleware.TaskFromContext(r.Context())
	if task == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	events, err := h.tasks.ListStatusEvents(r.Context(), task.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("load task history failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	notes, err := h.notes.ListByTask(r.Context(), task.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("load task notes failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	eventViews := make([]statusEventView, 0, len(events))
	for _, e := range events {
		eventViews = append(eventViews, statusEventView{
			ID:        e.ID.String(),
			User:      newUserRefView(e.User),
			Status:    string(e.Status),
			CreatedAt: e.CreatedAt,
		})
	}
	noteViews := make([]noteView, 0, len(notes))
	for _, n := range notes {
		noteViews = append(noteViews, newNoteView(n))
	}
	writeJSON(w, http.StatusOK, taskDetailView{
		taskView:    newTaskView(task),
		CompletedBy: eventViews,
		Notes:       noteViews,
	})
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	task := middleware.TaskFromContext(r.Context())
	if task == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	var body struct {
		Name        string `json:"name" validate:"required,max=200"`
		Description string `json:"description" validate:"required,max=5000"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	task.Name = SanitizeText(body.Name)
	task.Description = SanitizeText(body.Description)
	if err := h.tasks.Update(r.Context(), task); err != nil {
		h.log.Error().Err(err).Msg("update task failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "task updated"})
}

func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	task := middleware.TaskFromContext(r.Context())
	if user == nil || task == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	var body struct {
		Status string `json:"status" validate:"required,max=32"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	status, ok := domain.ParseTaskStatus(body.Status)
	if !ok {
		writeErr(w, http.StatusBadRequest, "", "invalid status")
		return
	}
	if err := h.tasks.UpdateStatus(r.Context(), task.ID, user.ID, status); err != nil {
		h.log.Error().Err(err).Msg("update task status failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "task status updated"})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	task := middleware.TaskFromContext(r.Context())
	if task == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	if err := h.tasks.Delete(r.Context(), task.ID); err != nil {
		h.log.Error().Err(err).Msg("delete task failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}
