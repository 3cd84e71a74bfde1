package user

import (
	"fmt"
	"log/slog"
)

type Repository interface {
	GetAll() ([]*User, error)
	GetByID(id string) (*User, error)
	GetByEmail(email string) (*User, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetAll returns every user as a sanitized projection.
func (s *Service) GetAll() ([]*PublicUser, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}
	return PublicSlice(users), nil
}

func (s *Service) GetByID(id string) (*PublicUser, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return u.Public(), nil
}

func (s *Service) GetByEmail(email string) (*PublicUser, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return u.Public(), nil
}
