package task_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/go-chi/chi"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/task"
	taskpg "github.com/frahmantamala/hr-management/internal/task/postgres"
)

func identityMiddleware(identity *auth.Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.ContextWithIdentity(r.Context(), identity)))
		})
	}
}

var _ = Describe("Task Handler", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&task.Task{})).To(Succeed())

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo := taskpg.NewTaskRepository(db)
		service := task.NewService(repo, logger)
		handler := task.NewHandler(service)

		router = chi.NewRouter()
		router.Use(identityMiddleware(&auth.Identity{UserID: "user-1", Email: "asha@example.com"}))
		router.Post("/api/tasks", handler.CreateTask)
		router.Get("/api/tasks", handler.GetAllTasks)
		router.Get("/api/tasks/my-tasks", handler.GetMyTasks)
		router.Get("/api/tasks/user/{userId}", handler.GetTasksByUser)
		router.Get("/api/tasks/{id}", handler.GetTaskByID)
		router.Patch("/api/tasks/{id}/status", handler.UpdateTaskStatus)
		router.Delete("/api/tasks/{id}", handler.DeleteTask)
	})

	createTask := func(title, assignedTo string) task.Task {
		body, _ := json.Marshal(map[string]string{
			"title":       title,
			"description": "details",
			"assignedTo":  assignedTo,
			"dueDate":     "2024-04-01",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusCreated))

		var created task.Task
		Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())
		return created
	}

	Describe("CreateTask", func() {
		It("creates a pending task attributed to the caller", func() {
			created := createTask("Prepare onboarding", "user-2")
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.Status).To(Equal(task.StatusPending))
			Expect(created.CreatedBy).To(Equal("user-1"))
		})

		It("rejects a payload without a title", func() {
			body, _ := json.Marshal(map[string]string{
				"assignedTo": "user-2", "dueDate": "2024-04-01",
			})
			req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			var resp map[string]string
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(HaveKey("error"))
		})
	})

	Describe("reads", func() {
		It("returns 404 for an unknown task id", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/tasks/nope", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("lists tasks for an assignee and for the caller", func() {
			mine := createTask("Mine", "user-1")
			theirs := createTask("Theirs", "user-2")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tasks/user/user-2", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))
			var tasks []task.Task
			Expect(json.Unmarshal(rec.Body.Bytes(), &tasks)).To(Succeed())
			Expect(tasks).To(HaveLen(1))
			Expect(tasks[0].ID).To(Equal(theirs.ID))

			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tasks/my-tasks", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(json.Unmarshal(rec.Body.Bytes(), &tasks)).To(Succeed())
			Expect(tasks).To(HaveLen(1))
			Expect(tasks[0].ID).To(Equal(mine.ID))
		})
	})

	Describe("UpdateTaskStatus", func() {
		It("accepts a lowercase label and stores the canonical value", func() {
			created := createTask("Prepare onboarding", "user-2")

			body, _ := json.Marshal(map[string]string{"status": "completed"})
			req := httptest.NewRequest(http.MethodPatch, "/api/tasks/"+created.ID+"/status", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var updated task.Task
			Expect(json.Unmarshal(rec.Body.Bytes(), &updated)).To(Succeed())
			Expect(updated.Status).To(Equal(task.StatusCompleted))
		})

		It("rejects an unknown label and leaves the task unchanged", func() {
			created := createTask("Prepare onboarding", "user-2")

			body, _ := json.Marshal(map[string]string{"status": "done"})
			req := httptest.NewRequest(http.MethodPatch, "/api/tasks/"+created.ID+"/status", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var stored task.Task
			Expect(db.First(&stored, "id = ?", created.ID).Error).NotTo(HaveOccurred())
			Expect(stored.Status).To(Equal(task.StatusPending))
		})

		It("returns 404 for an unknown id", func() {
			body, _ := json.Marshal(map[string]string{"status": "completed"})
			req := httptest.NewRequest(http.MethodPatch, "/api/tasks/missing/status", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DeleteTask", func() {
		It("returns 204 and removes the row", func() {
			created := createTask("Prepare onboarding", "user-2")

			req := httptest.NewRequest(http.MethodDelete, "/api/tasks/"+created.ID, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusNoContent))

			var count int64
			Expect(db.Model(&task.Task{}).Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("returns 204 again for the same id", func() {
			created := createTask("Prepare onboarding", "user-2")

			for i := 0; i < 2; i++ {
				req := httptest.NewRequest(http.MethodDelete, "/api/tasks/"+created.ID, nil)
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, req)
				Expect(rec.Code).To(Equal(http.StatusNoContent))
			}
		})
	})
})
