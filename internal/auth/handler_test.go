package auth_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/go-chi/chi"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/frahmantamala/hr-management/internal/auth"
	authpg "github.com/frahmantamala/hr-management/internal/auth/postgres"
	"github.com/frahmantamala/hr-management/internal/user"
	userpg "github.com/frahmantamala/hr-management/internal/user/postgres"
)

var _ = Describe("Auth Handler", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	signupBody := func(email string) []byte {
		body, _ := json.Marshal(map[string]string{
			"firstName": "Asha",
			"lastName":  "Rao",
			"email":     email,
			"password":  "s3cret-pass",
			"position":  "Engineer",
		})
		return body
	}

	post := func(target string, body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&user.User{})).To(Succeed())

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		tokenGen := auth.NewJWTTokenGenerator("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
		authService := auth.NewService(authpg.NewRepository(db), tokenGen, bcrypt.MinCost)
		authHandler := auth.NewHandler(authService)

		userService := user.NewService(userpg.NewUserRepository(db), logger)
		userHandler := user.NewHandler(userService)

		router = chi.NewRouter()
		router.Post("/api/auth/signup", authHandler.Signup)
		router.Post("/api/auth/login", authHandler.Login)
		router.Post("/api/auth/refresh", authHandler.RefreshToken)
		router.With(authHandler.AuthMiddleware).Get("/api/users/me", userHandler.GetCurrentUser)
	})

	It("signs up, logs in and resolves the current user from the token alone", func() {
		rec := post("/api/auth/signup", signupBody("asha@example.com"))
		Expect(rec.Code).To(Equal(http.StatusCreated))
		var created map[string]string
		Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())
		Expect(created["id"]).NotTo(BeEmpty())

		loginBody, _ := json.Marshal(map[string]string{
			"email": "asha@example.com", "password": "s3cret-pass",
		})
		rec = post("/api/auth/login", loginBody)
		Expect(rec.Code).To(Equal(http.StatusOK))
		var tokens auth.AuthTokens
		Expect(json.Unmarshal(rec.Body.Bytes(), &tokens)).To(Succeed())
		Expect(tokens.AccessToken).NotTo(BeEmpty())
		Expect(tokens.RefreshToken).NotTo(BeEmpty())

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
		meRec := httptest.NewRecorder()
		router.ServeHTTP(meRec, req)

		Expect(meRec.Code).To(Equal(http.StatusOK))
		var me user.PublicUser
		Expect(json.Unmarshal(meRec.Body.Bytes(), &me)).To(Succeed())
		Expect(me.ID).To(Equal(created["id"]))
		Expect(me.Email).To(Equal("asha@example.com"))
		Expect(meRec.Body.String()).NotTo(ContainSubstring("password"))
	})

	It("rejects a duplicate signup with 409", func() {
		Expect(post("/api/auth/signup", signupBody("asha@example.com")).Code).To(Equal(http.StatusCreated))

		rec := post("/api/auth/signup", signupBody("asha@example.com"))
		Expect(rec.Code).To(Equal(http.StatusConflict))
		var body map[string]string
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body).To(HaveKey("error"))
	})

	It("rejects a login with the wrong password", func() {
		Expect(post("/api/auth/signup", signupBody("asha@example.com")).Code).To(Equal(http.StatusCreated))

		loginBody, _ := json.Marshal(map[string]string{
			"email": "asha@example.com", "password": "wrong",
		})
		rec := post("/api/auth/login", loginBody)
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
	})

	It("issues fresh tokens from a valid refresh token", func() {
		Expect(post("/api/auth/signup", signupBody("asha@example.com")).Code).To(Equal(http.StatusCreated))

		loginBody, _ := json.Marshal(map[string]string{
			"email": "asha@example.com", "password": "s3cret-pass",
		})
		rec := post("/api/auth/login", loginBody)
		var tokens auth.AuthTokens
		Expect(json.Unmarshal(rec.Body.Bytes(), &tokens)).To(Succeed())

		refreshBody, _ := json.Marshal(map[string]string{"refresh_token": tokens.RefreshToken})
		rec = post("/api/auth/refresh", refreshBody)
		Expect(rec.Code).To(Equal(http.StatusOK))

		var refreshed auth.AuthTokens
		Expect(json.Unmarshal(rec.Body.Bytes(), &refreshed)).To(Succeed())
		Expect(refreshed.AccessToken).NotTo(BeEmpty())
	})

	It("rejects protected requests without or with a bad token", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))

		req = httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
	})
})
