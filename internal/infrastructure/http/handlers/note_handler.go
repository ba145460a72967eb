package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
	domerrors "github.com/DiegoRoNa/uptask-api/internal/domain/errors"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/http/middleware"
)

// NoteHandler serves task notes. Any member may write one; only its author
// may delete it.
type NoteHandler struct {
	notes    ports.NoteRepository
	validate *validator.Validate
	log      zerolog.Logger
}

func NewNoteHandler(notes ports.NoteRepository, log zerolog.Logger) *NoteHandler {
	return &NoteHandler{
		notes:    notes,
		validate: validator.New(),
		log:      log,
	}
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	task := middleware.TaskFromContext(r.Context())
	if user == nil || task == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	var body struct {
		Content string `json:"content" validate:"required,max=5000"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	content := SanitizeText(body.Content)
	if content == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid content")
		return
	}
	note := &domain.Note{
		ID:        domain.NewNoteID(uuid.New()),
		TaskID:    task.ID,
		CreatedBy: user.Ref(),
		Content:   content,
	}
	if err := h.notes.Create(r.Context(), note); err != nil {
		h.log.Error().Err(err).Msg("create note failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "note created",
		"note":    newNoteView(note),
	})
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	task := middleware.TaskFromContext(r.Context())
	if task == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	notes, err := h.notes.ListByTask(r.Context(), task.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list notes failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	views := make([]noteView, 0, len(notes))
	for _, n := range notes {
		views = append(views, newNoteView(n))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	task := middleware.TaskFromContext(r.Context())
	if user == nil || task == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "noteId"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid note id")
		return
	}
	note, err := h.notes.GetByID(r.Context(), domain.NewNoteID(id))
	if err != nil {
		h.log.Error().Err(err).Msg("load note failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	if note == nil || note.TaskID != task.ID {
		_ = writeDomainErr(w, domerrors.ErrNoteNotFound)
		return
	}
	if !note.AuthoredBy(user.ID) {
		_ = writeDomainErr(w, domerrors.ErrInvalidAction)
		return
	}
	if err := h.notes.Delete(r.Context(), note.ID); err != nil {
		h.log.Error().Err(err).Msg("delete note failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "note deleted"})
}
