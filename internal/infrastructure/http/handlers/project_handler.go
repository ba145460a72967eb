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

// ProjectHandler serves project CRUD. The resolver and role middleware have
// already put the project in context and enforced membership or management
// before these run.
type ProjectHandler struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	validate *validator.Validate
	log      zerolog.Logger
}

func NewProjectHandler(projects ports.ProjectRepository, tasks ports.TaskRepository, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
		tasks:    tasks,
		validate: validator.New(),
		log:      log,
	}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	var body struct {
		Name        string `json:"name" validate:"required,max=200"`
		ClientName  string `json:"client_name" validate:"required,max=200"`
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
	project := &domain.Project{
		ID:          domain.NewProjectID(uuid.New()),
		Name:        SanitizeText(body.Name),
		ClientName:  SanitizeText(body.ClientName),
		Description: SanitizeText(body.Description),
		ManagerID:   user.ID,
	}
	if err := h.projects.Create(r.Context(), project); err != nil {
		h.log.Error().Err(err).Msg("create project failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "project created",
		"project": newProjectView(project),
	})
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	projects, err := h.projects.ListForUser(r.Context(), user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list projects failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	views := make([]projectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, newProjectView(p))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project := middleware.ProjectFromContext(r.Context())
	if project == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	tasks, err := h.tasks.ListByProject(r.Context(), project.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("load project tasks failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, projectDetailView{
		projectView: newProjectView(project),
		Tasks:       newTaskViews(tasks),
	})
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	project := middleware.ProjectFromContext(r.Context())
	if project == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	var body struct {
		Name        string `json:"name" validate:"required,max=200"`
		ClientName  string `json:"client_name" validate:"required,max=200"`
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
	project.Name = SanitizeText(body.Name)
	project.ClientName = SanitizeText(body.ClientName)
	project.Description = SanitizeText(body.Description)
	if err := h.projects.Update(r.Context(), project); err != nil {
		h.log.Error().Err(err).Msg("update project failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "project updated"})
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	project := middleware.ProjectFromContext(r.Context())
	if project == nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	if err := h.projects.Delete(r.Context(), project.ID); err != nil {
		h.log.Error().Err(err).Msg("delete project failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}
