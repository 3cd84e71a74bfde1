package leave_test

import (
	"bytes"
	"encoding/json"
	"fmt"
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
	"github.com/frahmantamala/hr-management/internal/leave"
	leavepg "github.com/frahmantamala/hr-management/internal/leave/postgres"
)

// identityMiddleware injects a fixed identity, standing in for the JWT
// middleware in route-level tests.
func identityMiddleware(identity *auth.Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.ContextWithIdentity(r.Context(), identity)))
		})
	}
}

var _ = Describe("Leave Handler", func() {
	var (
		db       *gorm.DB
		router   *chi.Mux
		identity *auth.Identity
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&leave.Leave{})).To(Succeed())

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo := leavepg.NewLeaveRepository(db)
		service := leave.NewService(repo, logger)
		handler := leave.NewHandler(service)

		identity = &auth.Identity{UserID: "user-1", Email: "asha@example.com"}

		router = chi.NewRouter()
		router.Use(identityMiddleware(identity))
		router.Post("/api/leaves/apply", handler.ApplyLeave)
		router.Post("/api/leaves/apply-json", handler.ApplyLeaveJSON)
		router.Get("/api/leaves/history", handler.GetLeaveHistory)
		router.Get("/api/leaves/user", handler.GetUserLeaves)
		router.Patch("/api/leaves/{id}/status", handler.UpdateLeaveStatus)
	})

	applyJSON := func(from, to, leaveType, reason string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{
			"from": from, "to": to, "type": leaveType, "reason": reason,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/leaves/apply-json", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	Describe("ApplyLeave (query variant)", func() {
		It("creates a pending leave from query parameters", func() {
			url := "/api/leaves/apply?fromDate=2024-03-01&toDate=2024-03-05&leaveType=vacation&reason=trip"
			req := httptest.NewRequest(http.MethodPost, url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			var created leave.Leave
			Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())
			Expect(created.Status).To(Equal(leave.StatusPending))
			Expect(created.LeaveType).To(Equal("vacation"))
			Expect(created.UserID).To(Equal("user-1"))
		})

		It("rejects missing dates", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/leaves/apply?leaveType=vacation", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			var body map[string]string
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body).To(HaveKey("error"))
		})

		It("rejects a reversed range and stores nothing", func() {
			url := "/api/leaves/apply?fromDate=2024-03-10&toDate=2024-03-05"
			req := httptest.NewRequest(http.MethodPost, url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var count int64
			Expect(db.Model(&leave.Leave{}).Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})
	})

	Describe("ApplyLeaveJSON", func() {
		It("returns id, status and a confirmation message", func() {
			rec := applyJSON("2024-03-01", "2024-03-05", "sick", "flu")

			Expect(rec.Code).To(Equal(http.StatusCreated))
			var resp leave.ApplyLeaveResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.ID).NotTo(BeEmpty())
			Expect(resp.Status).To(Equal(leave.StatusPending))
			Expect(resp.Message).NotTo(BeEmpty())
		})

		It("produces the same record shape as the query variant", func() {
			rec := applyJSON("2024-03-01", "2024-03-05", "sick", "flu")
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var stored leave.Leave
			Expect(db.First(&stored).Error).NotTo(HaveOccurred())
			Expect(stored.LeaveType).To(Equal("sick"))
			Expect(stored.Reason).To(Equal("flu"))
			Expect(stored.UserEmail).To(Equal("asha@example.com"))
		})

		It("rejects malformed JSON", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/leaves/apply-json", bytes.NewReader([]byte("{")))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("history and status update", func() {
		It("applies, lists, approves and reflects the new status", func() {
			rec := applyJSON("2024-03-01", "2024-03-05", "vacation", "trip")
			Expect(rec.Code).To(Equal(http.StatusCreated))
			var resp leave.ApplyLeaveResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())

			req := httptest.NewRequest(http.MethodGet, "/api/leaves/history", nil)
			listRec := httptest.NewRecorder()
			router.ServeHTTP(listRec, req)
			Expect(listRec.Code).To(Equal(http.StatusOK))

			var leaves []leave.Leave
			Expect(json.Unmarshal(listRec.Body.Bytes(), &leaves)).To(Succeed())
			Expect(leaves).To(HaveLen(1))
			Expect(leaves[0].ID).To(Equal(resp.ID))
			Expect(leaves[0].Status).To(Equal(leave.StatusPending))

			patchBody, _ := json.Marshal(map[string]string{"status": "approved"})
			patchReq := httptest.NewRequest(http.MethodPatch,
				fmt.Sprintf("/api/leaves/%s/status", resp.ID), bytes.NewReader(patchBody))
			patchRec := httptest.NewRecorder()
			router.ServeHTTP(patchRec, patchReq)
			Expect(patchRec.Code).To(Equal(http.StatusOK))

			var updated leave.Leave
			Expect(json.Unmarshal(patchRec.Body.Bytes(), &updated)).To(Succeed())
			Expect(updated.Status).To(Equal(leave.StatusApproved))

			listRec = httptest.NewRecorder()
			router.ServeHTTP(listRec, httptest.NewRequest(http.MethodGet, "/api/leaves/user", nil))
			Expect(listRec.Code).To(Equal(http.StatusOK))
			Expect(json.Unmarshal(listRec.Body.Bytes(), &leaves)).To(Succeed())
			Expect(leaves[0].Status).To(Equal(leave.StatusApproved))
		})

		It("returns 404 for a status update on an unknown id", func() {
			patchBody, _ := json.Marshal(map[string]string{"status": "approved"})
			req := httptest.NewRequest(http.MethodPatch, "/api/leaves/missing/status", bytes.NewReader(patchBody))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			var body map[string]string
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["error"]).To(ContainSubstring("missing"))
		})

		It("rejects an empty status", func() {
			patchBody, _ := json.Marshal(map[string]string{"status": ""})
			req := httptest.NewRequest(http.MethodPatch, "/api/leaves/any/status", bytes.NewReader(patchBody))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
