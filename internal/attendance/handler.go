package attendance

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/frahmantamala/hr-management/pkg/logger"
)

type ServiceAPI interface {
	GetToday(userID string) (*Attendance, error)
	GetRecent(userID string, limit int) ([]*Attendance, error)
	CheckIn(userID string) (*Attendance, error)
	CheckOut(userID string) (*Attendance, error)
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

// GetToday handles GET /api/attendance/today.
func (h *Handler) GetToday(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	a, err := h.Service.GetToday(identity.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.WriteError(w, http.StatusNotFound, "no attendance record for today")
			return
		}
		h.Logger.Error("GetToday: service error", "error", err, "user_id", identity.UserID)
		h.WriteError(w, http.StatusInternalServerError, "failed to fetch attendance")
		return
	}

	h.WriteJSON(w, http.StatusOK, a)
}

// GetRecent handles GET /api/attendance/recent?limit=N.
func (h *Handler) GetRecent(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 7
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	records, err := h.Service.GetRecent(identity.UserID, limit)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to fetch attendance history")
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

// CheckIn handles POST /api/attendance/check-in.
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	a, err := h.Service.CheckIn(identity.UserID)
	if err != nil {
		if errors.Is(err, ErrAlreadyCheckedIn) {
			h.WriteAppError(w, internal.NewConflictError("already checked in today", internal.ErrCodeAlreadyCheckedIn))
			return
		}
		h.Logger.Error("CheckIn: service error", "error", err, "user_id", identity.UserID)
		h.WriteError(w, http.StatusInternalServerError, "failed to check in")
		return
	}

	h.WriteJSON(w, http.StatusCreated, a)
}

// CheckOut handles POST /api/attendance/check-out.
func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	a, err := h.Service.CheckOut(identity.UserID)
	if err != nil {
		if errors.Is(err, ErrNotCheckedIn) {
			h.WriteAppError(w, internal.NewValidationError("no check-in recorded today", internal.ErrCodeNotCheckedIn))
			return
		}
		h.Logger.Error("CheckOut: service error", "error", err, "user_id", identity.UserID)
		h.WriteError(w, http.StatusInternalServerError, "failed to check out")
		return
	}

	h.WriteJSON(w, http.StatusOK, a)
}
