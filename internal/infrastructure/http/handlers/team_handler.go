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

// TeamHandler manages a project's collaborator list. Membership mutation is
// manager-only (gated in the router); the manager is never on the team list.
type TeamHandler struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	validate *validator.Validate
	log      zerolog.Logger
}

func NewTeamHandler(projects ports.ProjectRepository, users ports.UserRepository, log zerolog.Logger) *TeamHandler {
	return &TeamHandler{
		projects: projects,
		users:    users,
		validate: validator.New(),
		log:      log,
	}
}

func (h *TeamHandler) FindMember(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email" validate:"required,email,max=254"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	email := SanitizeEmail(body.Email)
	if email == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid email")
		return
	}
	user, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		h.log.Error().Err(err).Msg("find member failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	if user == nil {
		_ = writeDomainErr(w, domerrors.ErrUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, newUserView(user))
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	project := middleware.ProjectFromContext(r.Context())
	if project == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	members, err := h.projects.ListMembers(r.Context(), project.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list team failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	views := make([]userView, 0, len(members))
	for _, m := range members {
		views = append(views, newUserRefView(m))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	project := middleware.ProjectFromContext(r.Context())
	if project == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	var body struct {
		ID string `json:"id" validate:"required,uuid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	id, err := uuid.Parse(body.ID)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid user id")
		return
	}
	userID := domain.NewUserID(id)
	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Msg("add member failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	if user == nil {
		_ = writeDomainErr(w, domerrors.ErrUserNotFound)
		return
	}
	if project.IsManager(userID) || project.HasCollaborator(userID) {
		_ = writeDomainErr(w, domerrors.ErrAlreadyOnTeam)
		return
	}
	if err := h.projects.AddMember(r.Context(), project.ID, userID); err != nil {
		h.log.Error().Err(err).Msg("add member failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "user added to the project"})
}

func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	project := middleware.ProjectFromContext(r.Context())
	if project == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid user id")
		return
	}
	userID := domain.NewUserID(id)
	if !project.HasCollaborator(userID) {
		_ = writeDomainErr(w, domerrors.ErrNotOnTeam)
		return
	}
	if err := h.projects.RemoveMember(r.Context(), project.ID, userID); err != nil {
		h.log.Error().Err(err).Msg("remove member failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "user removed from the project"})
}
