package user

import (
	"errors"
	"time"
)

// User is the full directory record, including the password hash. It never
// leaves the service layer; responses carry PublicUser instead.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"firstName" gorm:"column:first_name"`
	LastName     string    `json:"lastName" gorm:"column:last_name"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	Position     string    `json:"position"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser is the sanitized read-only projection served to clients.
type PublicUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Position  string `json:"position"`
	Avatar    string `json:"avatar"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Position:  u.Position,
		Avatar:    u.Avatar,
	}
}

func PublicSlice(users []*User) []*PublicUser {
	result := make([]*PublicUser, len(users))
	for i, u := range users {
		result[i] = u.Public()
	}
	return result
}

var ErrNotFound = errors.New("user not found")
