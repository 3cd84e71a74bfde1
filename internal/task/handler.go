package task

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/frahmantamala/hr-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(dto CreateTaskDTO, createdBy string) (*Task, error)
	GetAll() ([]*Task, error)
	GetByID(id string) (*Task, error)
	GetByAssignee(userID string) ([]*Task, error)
	UpdateStatus(id, label string) (*Task, error)
	Delete(id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// CreateTask handles POST /api/tasks.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.Service.Create(dto, identity.UserID)
	if err != nil {
		h.WriteAppError(w, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed))
		return
	}

	h.WriteJSON(w, http.StatusCreated, t)
}

// GetAllTasks handles GET /api/tasks.
func (h *Handler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Service.GetAll()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to fetch tasks")
		return
	}

	h.WriteJSON(w, http.StatusOK, tasks)
}

// GetTaskByID handles GET /api/tasks/{id}.
func (h *Handler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			h.WriteAppError(w, internal.NewNotFoundError("task not found with id: "+id, internal.ErrCodeTaskNotFound))
			return
		}
		h.Logger.Error("GetTaskByID: service error", "error", err, "task_id", id)
		h.WriteError(w, http.StatusInternalServerError, "failed to fetch task")
		return
	}

	h.WriteJSON(w, http.StatusOK, t)
}

// GetTasksByUser handles GET /api/tasks/user/{userId}.
func (h *Handler) GetTasksByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	tasks, err := h.Service.GetByAssignee(userID)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to fetch tasks")
		return
	}

	h.WriteJSON(w, http.StatusOK, tasks)
}

// GetMyTasks handles GET /api/tasks/my-tasks using the acting identity.
func (h *Handler) GetMyTasks(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tasks, err := h.Service.GetByAssignee(identity.UserID)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to fetch tasks")
		return
	}

	h.WriteJSON(w, http.StatusOK, tasks)
}

// UpdateTaskStatus handles PATCH /api/tasks/{id}/status.
func (h *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateTaskStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.Service.UpdateStatus(id, dto.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownStatus):
			h.WriteAppError(w, internal.NewValidationError(err.Error(), internal.ErrCodeInvalidTaskStatus))
		case errors.Is(err, ErrTaskNotFound):
			h.WriteAppError(w, internal.NewNotFoundError("task not found with id: "+id, internal.ErrCodeTaskNotFound))
		default:
			h.Logger.Error("UpdateTaskStatus: service error", "error", err, "task_id", id)
			h.WriteError(w, http.StatusInternalServerError, "failed to update task status")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, t)
}

// DeleteTask handles DELETE /api/tasks/{id}. Always 204, even when the task
// is already gone.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.Delete(id); err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
