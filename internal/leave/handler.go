package leave

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
	Apply(identity *auth.Identity, dto ApplyLeaveDTO) (*Leave, error)
	GetUserLeaves(userID string) ([]*Leave, error)
	GetByID(id string) (*Leave, error)
	UpdateStatus(id, status string) (*Leave, error)
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

// ApplyLeave handles POST /api/leaves/apply with query parameters
// fromDate, toDate, leaveType and reason.
func (h *Handler) ApplyLeave(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	dto, err := ParseApplyQuery(r.URL.Query())
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	l, err := h.Service.Apply(identity, dto)
	if err != nil {
		h.writeApplyError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, l)
}

// ApplyLeaveJSON handles POST /api/leaves/apply-json with a JSON payload
// keyed from/to/type/reason. Both variants funnel into the same creation
// contract.
func (h *Handler) ApplyLeaveJSON(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var payload applyLeaveJSON
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := payload.toDTO()
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	l, err := h.Service.Apply(identity, dto)
	if err != nil {
		h.writeApplyError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ApplyLeaveResponse{
		ID:      l.ID,
		Status:  l.Status,
		Message: "Leave application submitted successfully",
	})
}

// GetLeaveHistory handles GET /api/leaves/history.
func (h *Handler) GetLeaveHistory(w http.ResponseWriter, r *http.Request) {
	h.listForIdentity(w, r)
}

// GetUserLeaves handles GET /api/leaves/user.
func (h *Handler) GetUserLeaves(w http.ResponseWriter, r *http.Request) {
	h.listForIdentity(w, r)
}

func (h *Handler) listForIdentity(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	leaves, err := h.Service.GetUserLeaves(identity.UserID)
	if err != nil {
		h.Logger.Error("failed to fetch leave history", "error", err, "user_id", identity.UserID)
		h.WriteError(w, http.StatusInternalServerError, "failed to fetch leave history")
		return
	}

	h.WriteJSON(w, http.StatusOK, leaves)
}

// UpdateLeaveStatus handles PATCH /api/leaves/{id}/status.
func (h *Handler) UpdateLeaveStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateLeaveStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	l, err := h.Service.UpdateStatus(id, dto.Status)
	if err != nil {
		if errors.Is(err, ErrLeaveNotFound) {
			h.WriteAppError(w, internal.NewNotFoundError("leave not found with id: "+id, internal.ErrCodeLeaveNotFound))
			return
		}
		h.Logger.Error("failed to update leave status", "error", err, "leave_id", id)
		h.WriteError(w, http.StatusInternalServerError, "failed to update leave status")
		return
	}

	h.WriteJSON(w, http.StatusOK, l)
}

func (h *Handler) writeApplyError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidDateRange) {
		h.WriteAppError(w, internal.NewValidationError("From date cannot be after to date", internal.ErrCodeInvalidDateRange))
		return
	}
	h.WriteAppError(w, internal.NewInternalError("failed to apply for leave", err))
}
