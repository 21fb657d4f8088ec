package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/tasklist-service/internal/api/dto"
	"github.com/spec-kit/tasklist-service/internal/auth"
	"github.com/spec-kit/tasklist-service/internal/domain"
	"github.com/spec-kit/tasklist-service/internal/service"
	apperrors "github.com/spec-kit/tasklist-service/pkg/util"
)

// TasklistsHandler manages tasklist endpoints.
type TasklistsHandler struct {
	service *service.TasklistService
}

// NewTasklistsHandler constructs handler.
func NewTasklistsHandler(tasklistService *service.TasklistService) *TasklistsHandler {
	return &TasklistsHandler{service: tasklistService}
}

// GetAll handles GET /tasklist/getAll.
func (h *TasklistsHandler) GetAll(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	tasklists, err := h.service.ListForOwner(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}

	items := make([]dto.TasklistResponse, 0, len(tasklists))
	for i := range tasklists {
		items = append(items, tasklistResponse(&tasklists[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /tasklist/get/:id.
func (h *TasklistsHandler) Get(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("invalid tasklist id", nil)
	}

	tasklist, err := h.service.Get(c.UserContext(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": tasklistResponse(tasklist)})
}

// Create handles POST /tasklist/create.
func (h *TasklistsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.TasklistCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	tasklist, err := h.service.Create(c.UserContext(), principal.UserID, req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": tasklistResponse(&service.TasklistWithTasks{Tasklist: *tasklist, Tasks: nil}),
	})
}

// Update handles POST /tasklist/update.
func (h *TasklistsHandler) Update(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.TasklistUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID == uuid.Nil {
		return apperrors.NewValidationError("id required", nil)
	}

	tasklist, err := h.service.Update(c.UserContext(), principal, service.TasklistUpdateInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": tasklistResponse(&service.TasklistWithTasks{Tasklist: *tasklist, Tasks: nil}),
	})
}

// Delete handles DELETE /tasklist/delete/:id.
func (h *TasklistsHandler) Delete(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("invalid tasklist id", nil)
	}

	if err := h.service.Delete(c.UserContext(), principal, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func tasklistResponse(tasklist *service.TasklistWithTasks) dto.TasklistResponse {
	tasks := make([]dto.TaskResponse, 0, len(tasklist.Tasks))
	for i := range tasklist.Tasks {
		tasks = append(tasks, taskResponse(&tasklist.Tasks[i]))
	}
	return dto.TasklistResponse{
		ID:          tasklist.Tasklist.ID,
		OwnerID:     tasklist.Tasklist.OwnerID,
		Name:        tasklist.Tasklist.Name,
		Description: tasklist.Tasklist.Description,
		Tasks:       tasks,
	}
}

func taskResponse(task *domain.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          task.ID,
		OwnerID:     task.OwnerID,
		TasklistID:  task.TasklistID,
		Name:        task.Name,
		Description: task.Description,
	}
}
