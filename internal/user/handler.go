package user

import (
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
	GetAll() ([]*PublicUser, error)
	GetByID(id string) (*PublicUser, error)
	GetByEmail(email string) (*PublicUser, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// GetAllUsers handles GET /api/users
func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("GetAllUsers: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}

	h.WriteJSON(w, http.StatusOK, users)
}

// GetUserByID handles GET /api/users/{id}
func (h *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.WriteAppError(w, internal.NewNotFoundError("user not found with id: "+id, internal.ErrCodeUserNotFound))
			return
		}
		h.Logger.Error("GetUserByID: service error", "error", err, "user_id", id)
		h.WriteError(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

// GetCurrentUser handles GET /api/users/me. The acting identity comes from
// the verified token in the request context, never from ambient session state.
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.Logger.Error("GetCurrentUser: identity not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.Service.GetByEmail(identity.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.WriteAppError(w, internal.NewNotFoundError("user not found with email: "+identity.Email, internal.ErrCodeUserNotFound))
			return
		}
		h.Logger.Error("GetCurrentUser: service error", "error", err, "email", identity.Email)
		h.WriteError(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}
