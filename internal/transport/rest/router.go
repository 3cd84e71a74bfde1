package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hr-management/internal/attendance"
	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/leave"
	"github.com/frahmantamala/hr-management/internal/task"
	"github.com/frahmantamala/hr-management/internal/transport/middleware"
	"github.com/frahmantamala/hr-management/internal/transport/swagger"
	"github.com/frahmantamala/hr-management/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// RegisterAllRoutes wires every handler into the router. Route strings under
// /api are part of the external contract and must not change.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	allowedOrigins string,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	leaveHandler *leave.Handler,
	taskHandler *task.Handler,
	attendanceHandler *attendance.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	requireAuth := authHandler.AuthMiddleware

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(ar chi.Router) {
			ar.Post("/signup", authHandler.Signup)
			ar.Post("/login", authHandler.Login)
			ar.Post("/refresh", authHandler.RefreshToken)
		})

		r.Route("/users", func(ur chi.Router) {
			ur.Get("/", userHandler.GetAllUsers)
			ur.With(requireAuth).Get("/me", userHandler.GetCurrentUser)
			ur.Get("/{id}", userHandler.GetUserByID)
		})

		r.Route("/leaves", func(lr chi.Router) {
			lr.Group(func(pr chi.Router) {
				pr.Use(requireAuth)
				pr.Post("/apply", leaveHandler.ApplyLeave)
				pr.Post("/apply-json", leaveHandler.ApplyLeaveJSON)
				pr.Get("/history", leaveHandler.GetLeaveHistory)
				pr.Get("/user", leaveHandler.GetUserLeaves)
			})

			lr.Patch("/{id}/status", leaveHandler.UpdateLeaveStatus)
		})

		r.Route("/tasks", func(tr chi.Router) {
			tr.With(requireAuth).Post("/", taskHandler.CreateTask)
			tr.Get("/", taskHandler.GetAllTasks)
			tr.With(requireAuth).Get("/my-tasks", taskHandler.GetMyTasks)
			tr.Get("/user/{userId}", taskHandler.GetTasksByUser)
			tr.Get("/{id}", taskHandler.GetTaskByID)
			tr.Patch("/{id}/status", taskHandler.UpdateTaskStatus)
			tr.Delete("/{id}", taskHandler.DeleteTask)
		})

		r.Route("/attendance", func(ar chi.Router) {
			ar.Use(requireAuth)
			ar.Get("/today", attendanceHandler.GetToday)
			ar.Get("/recent", attendanceHandler.GetRecent)
			ar.Post("/check-in", attendanceHandler.CheckIn)
			ar.Post("/check-out", attendanceHandler.CheckOut)
		})
	})
}
