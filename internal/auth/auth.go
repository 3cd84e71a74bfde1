package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Identity is the acting user derived from a verified credential. It is the
// only thing handlers ever learn about the caller; there is no ambient
// session state.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// ServiceAPI is the surface the HTTP layer depends on.
type ServiceAPI interface {
	Register(dto SignupDTO) (string, error)
	Authenticate(dto LoginDTO) (AuthTokens, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type RepositoryAPI interface {
	GetCredentialsByEmail(email string) (passwordHash string, userID string, err error)
	EmailExists(email string) (bool, error)
	CreateUser(rec *UserRecord) error
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(userID, email string) (string, error)
	GenerateRefreshToken(userID, email string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// UserRecord is the row shape the auth repository writes at registration.
type UserRecord struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Position     string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Claims are the signed JWT claims an identity is resolved from.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() *Identity {
	return &Identity{UserID: c.UserID, Email: c.Email}
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

type ctxKey string

const identityKey ctxKey = "identity"

// IdentityFromContext returns the identity the auth middleware attached.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok
}

func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
