package attendance_test

import (
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

	"github.com/frahmantamala/hr-management/internal/attendance"
	attendancepg "github.com/frahmantamala/hr-management/internal/attendance/postgres"
	"github.com/frahmantamala/hr-management/internal/auth"
)

func identityMiddleware(identity *auth.Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.ContextWithIdentity(r.Context(), identity)))
		})
	}
}

var _ = Describe("Attendance Handler", func() {
	var router *chi.Mux

	BeforeEach(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&attendance.Attendance{})).To(Succeed())

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := attendance.NewService(attendancepg.NewAttendanceRepository(db), logger)
		handler := attendance.NewHandler(service)

		router = chi.NewRouter()
		router.Use(identityMiddleware(&auth.Identity{UserID: "user-1", Email: "asha@example.com"}))
		router.Get("/api/attendance/today", handler.GetToday)
		router.Get("/api/attendance/recent", handler.GetRecent)
		router.Post("/api/attendance/check-in", handler.CheckIn)
		router.Post("/api/attendance/check-out", handler.CheckOut)
	})

	do := func(method, target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
		return rec
	}

	It("walks through a working day: check in, fetch today, check out", func() {
		rec := do(http.MethodPost, "/api/attendance/check-in")
		Expect(rec.Code).To(Equal(http.StatusCreated))

		var a attendance.Attendance
		Expect(json.Unmarshal(rec.Body.Bytes(), &a)).To(Succeed())
		Expect(a.UserID).To(Equal("user-1"))
		Expect(a.CheckOutTime).To(BeNil())

		rec = do(http.MethodGet, "/api/attendance/today")
		Expect(rec.Code).To(Equal(http.StatusOK))

		rec = do(http.MethodPost, "/api/attendance/check-out")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(json.Unmarshal(rec.Body.Bytes(), &a)).To(Succeed())
		Expect(a.CheckOutTime).NotTo(BeNil())
	})

	It("returns 409 on a second check-in the same day", func() {
		Expect(do(http.MethodPost, "/api/attendance/check-in").Code).To(Equal(http.StatusCreated))

		rec := do(http.MethodPost, "/api/attendance/check-in")
		Expect(rec.Code).To(Equal(http.StatusConflict))
		var body map[string]string
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body).To(HaveKey("error"))
	})

	It("returns 400 on check-out without a check-in", func() {
		rec := do(http.MethodPost, "/api/attendance/check-out")
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for today when nothing is recorded", func() {
		Expect(do(http.MethodGet, "/api/attendance/today").Code).To(Equal(http.StatusNotFound))
	})

	It("returns an empty recent list for a fresh user", func() {
		rec := do(http.MethodGet, "/api/attendance/recent?limit=5")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var records []attendance.Attendance
		Expect(json.Unmarshal(rec.Body.Bytes(), &records)).To(Succeed())
		Expect(records).To(BeEmpty())
	})
})
