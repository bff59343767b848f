package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planora/wedding-planner/internal/model"
	"github.com/planora/wedding-planner/internal/planner"
)

// TaskHandler covers a wedding's task list.
type TaskHandler struct {
	Planner *planner.Planner
}

// NewTaskHandler constructs a TaskHandler. The planner must be non-nil.
func NewTaskHandler(p *planner.Planner) *TaskHandler {
	if p == nil {
		panic("nil planner passed to NewTaskHandler")
	}
	return &TaskHandler{Planner: p}
}

type addTaskReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	AssignedTo  string `json:"assigned_to"`
	Budget      uint64 `json:"budget"`
}

type updateTaskStatusReq struct {
	Status string `json:"status"`
}

// Add handles POST /v1/weddings/:id/tasks. The task id is issued by the
// shared generator, never by the client.
func (h *TaskHandler) Add(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	var req addTaskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	task, err := h.Planner.AddTask(c.Request().Context(), planner.AddTaskInput{
		WeddingID:   weddingID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		AssignedTo:  req.AssignedTo,
		Budget:      req.Budget,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "task added successfully",
		"task":    task,
	})
}

// UpdateStatus handles PATCH /v1/weddings/:id/tasks/:task_id.
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	taskID, err := pathID(c, "task_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task id"})
	}
	var req updateTaskStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	task, err := h.Planner.UpdateTaskStatus(c.Request().Context(), weddingID, taskID, model.TaskStatus(req.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "task status updated successfully",
		"task":    task,
	})
}

// Delete handles DELETE /v1/weddings/:id/tasks/:task_id.
func (h *TaskHandler) Delete(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	taskID, err := pathID(c, "task_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task id"})
	}
	task, err := h.Planner.DeleteTask(c.Request().Context(), weddingID, taskID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "task deleted successfully",
		"task":    task,
	})
}

// List handles GET /v1/weddings/:id/tasks.
func (h *TaskHandler) List(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	tasks, err := h.Planner.GetTaskList(c.Request().Context(), weddingID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tasks": tasks})
}

// Get handles GET /v1/weddings/:id/tasks/:task_id.
func (h *TaskHandler) Get(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	taskID, err := pathID(c, "task_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task id"})
	}
	task, err := h.Planner.GetTaskDetails(c.Request().Context(), weddingID, taskID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"task": task})
}
