package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lekzzicon/portfolio-backend/database"
	"github.com/lekzzicon/portfolio-backend/errs"
	"github.com/lekzzicon/portfolio-backend/models"
)

// projectStore is the slice of the project repository the handlers need.
// Tests substitute a stub with call counters.
type projectStore interface {
	FindAll(filter database.ProjectFilter) ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo projectStore
}

func newProjectHandler(projectRepo projectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// projectPayload is the JSON body for creating a project. Technologies may
// arrive as an array or as a comma-separated string.
type projectPayload struct {
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Technologies *models.TechnologyList `json:"technologies"`
	GithubURL    string                 `json:"githubUrl"`
	LiveURL      string                 `json:"liveUrl"`
	ImageURLs    models.ImageList       `json:"imageUrls"`
	Category     string                 `json:"category"`
	Date         string                 `json:"date"`
}

// projectPatch is a sparse update; absent fields keep their stored value.
// The identifier and creation time are never patchable.
type projectPatch struct {
	Title        *string                `json:"title"`
	Description  *string                `json:"description"`
	Technologies *models.TechnologyList `json:"technologies"`
	GithubURL    *string                `json:"githubUrl"`
	LiveURL      *string                `json:"liveUrl"`
	ImageURLs    *models.ImageList      `json:"imageUrls"`
	Category     *string                `json:"category"`
	Date         *string                `json:"date"`
}

func (p projectPatch) apply(project *models.Project) {
	if p.Title != nil {
		project.Title = *p.Title
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.Technologies != nil {
		project.Technologies = *p.Technologies
	}
	if p.GithubURL != nil {
		project.GithubURL = *p.GithubURL
	}
	if p.LiveURL != nil {
		project.LiveURL = *p.LiveURL
	}
	if p.ImageURLs != nil {
		project.ImageURLs = *p.ImageURLs
	}
	if p.Category != nil {
		project.Category = *p.Category
	}
	if p.Date != nil {
		project.Date = *p.Date
	}
}

// listProjects retrieves projects matching the query filters
// @Summary List projects
// @Description Retrieves projects, optionally filtered by category and free-text search
// @Tags Projects
// @Produce json
// @Param category query string false "Category filter ('all' disables it)"
// @Param search query string false "Case-insensitive search over title, description and technologies"
// @Param limit query int false "Maximum number of results (0 = unbounded)"
// @Param sort query string false "Sort field, '-createdAt' by default"
// @Success 200 {object} map[string]any "List of projects with count"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		limit, err := strconv.Atoi(query.Get("limit"))
		if err != nil || limit < 0 {
			limit = 0
		}

		filter := database.ProjectFilter{
			Category: query.Get("category"),
			Search:   query.Get("search"),
			Limit:    limit,
			Sort:     query.Get("sort"),
		}

		projects, err := h.projectRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":  true,
			"projects": projects,
			"count":    len(projects),
		})
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Description Retrieves detailed information about a specific project by ID
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]any "Project details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching project"
// @Router /projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"data":    project,
		})
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Creates a new project in the database
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body projectPayload true "Project data"
// @Success 201 {object} map[string]any "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload projectPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if err := payload.checkRequired(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := models.Project{
			Title:        payload.Title,
			Description:  payload.Description,
			Technologies: *payload.Technologies,
			GithubURL:    payload.GithubURL,
			LiveURL:      payload.LiveURL,
			ImageURLs:    payload.ImageURLs,
			Category:     payload.Category,
			Date:         payload.Date,
		}

		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"project": project,
			"message": "Project created successfully",
		})
	}
}

// updateProject applies a partial update to an existing project
// @Summary Update project
// @Description Updates an existing project; absent fields are left unchanged
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body projectPatch true "Fields to update"
// @Success 200 {object} map[string]any "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		var patch projectPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project patch body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		patch.apply(project)

		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"data":    project,
			"message": "Project updated successfully",
		})
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Deletes a project from the database by ID
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]any "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.projectRepo.FindByID(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "Project deleted successfully",
		})
	}
}

// parseProjectID validates the path identifier before any database
// round-trip, so malformed input is a clean 400 instead of a driver error.
func parseProjectID(r *http.Request) (uuid.UUID, error) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing projectID")
	}

	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		return uuid.Nil, errs.NewInvalidIdentifierError("project")
	}
	return projectID, nil
}

func (p projectPayload) checkRequired() error {
	switch {
	case p.Title == "":
		return errs.NewMissingRequiredFieldError("title")
	case p.Description == "":
		return errs.NewMissingRequiredFieldError("description")
	case p.Technologies == nil || len(*p.Technologies) == 0:
		return errs.NewMissingRequiredFieldError("technologies")
	case p.Category == "":
		return errs.NewMissingRequiredFieldError("category")
	case p.Date == "":
		return errs.NewMissingRequiredFieldError("date")
	}
	return nil
}
