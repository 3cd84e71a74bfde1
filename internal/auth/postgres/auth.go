package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/frahmantamala/hr-management/internal/auth"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetCredentialsByEmail(email string) (string, string, error) {
	var passwordHash string
	var userID string
	query := `SELECT id, password_hash FROM users WHERE email = ?`

	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&userID, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", fmt.Errorf("user not found")
		}
		return "", "", err
	}
	return passwordHash, userID, nil
}

func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Table("users").Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateUser(rec *auth.UserRecord) error {
	return r.db.Exec(
		`INSERT INTO users (id, first_name, last_name, email, password_hash, position, avatar, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.FirstName, rec.LastName, rec.Email, rec.PasswordHash,
		rec.Position, rec.Avatar, rec.CreatedAt, rec.UpdatedAt,
	).Error
}
