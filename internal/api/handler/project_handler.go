package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devportfolio/portfolio-api/internal/api/metrics"
	"github.com/devportfolio/portfolio-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for portfolio projects. Reads are
// anonymous; mutations are registered behind the Auth middleware.
type ProjectHandler struct {
	projects ports.ProjectService
}

func NewProjectHandler(projects ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List handles GET /projects.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  ports.ProjectView
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	views, err := h.projects.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Get handles GET /projects/:id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  ports.ProjectView
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	view, err := h.projects.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Create handles POST /projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project payload"
// @Success      201   {object}  projectResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.projects.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.ProjectMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, projectResponse{Msg: "project created", Project: view})
}

// Update handles PUT /projects/:id.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Project id"
// @Param        body  body      projectRequest  true  "Fields to change"
// @Success      200   {object}  projectResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.projects.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.ProjectMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, projectResponse{Msg: "project updated", Project: view})
}

// Delete handles DELETE /projects/:id. The row is removed permanently.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projects.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ProjectMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"msg": "project deleted"})
}
