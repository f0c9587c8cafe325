package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
	"portfolioapi/internal/validation"
)

// ListProjects returns projects ascending by display order, optionally
// filtered by exact type match.
//
// @Summary List projects
// @Tags projects
// @Produce json
// @Param project_type query string false "exact type filter"
// @Success 200 {array} model.Project
// @Router /api/projects [get]
func ListProjects(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.UserContext(), c.Query("project_type")))
	}
}

// CreateProject stores a new project.
//
// @Summary Create project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body model.ProjectCreate true "project fields"
// @Success 200 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /api/projects [post]
func CreateProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ProjectCreate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if errs := validation.Struct(in); errs != nil {
			return writeValidationError(c, errs)
		}

		id, ok := svc.Create(c.UserContext(), in)
		if !ok {
			return writeError(c, fiber.StatusInternalServerError, "failed to create project")
		}
		return writeSuccess(c, "Project created successfully", fiber.Map{"project_id": id})
	}
}

// UpdateProject applies a partial update; only supplied fields change.
//
// @Summary Update project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "project id"
// @Param project body model.ProjectUpdate true "fields to change"
// @Success 200 {object} model.APIResponse
// @Failure 404 {object} model.APIResponse
// @Router /api/projects/{id} [put]
func UpdateProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upd model.ProjectUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		if !svc.Update(c.UserContext(), c.Params("id"), upd) {
			return writeError(c, fiber.StatusNotFound, "project not found")
		}
		return writeSuccess(c, "Project updated successfully", nil)
	}
}

// DeleteProject removes a project.
//
// @Summary Delete project
// @Tags projects
// @Produce json
// @Param id path string true "project id"
// @Success 200 {object} model.APIResponse
// @Failure 404 {object} model.APIResponse
// @Router /api/projects/{id} [delete]
func DeleteProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !svc.Delete(c.UserContext(), c.Params("id")) {
			return writeError(c, fiber.StatusNotFound, "project not found")
		}
		return writeSuccess(c, "Project deleted successfully", nil)
	}
}
