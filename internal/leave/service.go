package leave

import (
	"log/slog"

	"github.com/frahmantamala/hr-management/internal/auth"
)

// Repository defines the data access methods for leave applications
type Repository interface {
	Create(l *Leave) error
	GetByID(id string) (*Leave, error)
	GetByUserID(userID string) ([]*Leave, error)
	UpdateStatus(id string, status string) error
}

// Service handles leave business logic
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

// Apply validates the date range and persists a new pending application for
// the acting identity. Nothing is written when validation fails.
func (s *Service) Apply(identity *auth.Identity, dto ApplyLeaveDTO) (*Leave, error) {
	l, err := NewLeave(identity.UserID, identity.Email, dto.FromDate, dto.ToDate, dto.LeaveType, dto.Reason)
	if err != nil {
		s.logger.Warn("leave application rejected", "error", err, "user_id", identity.UserID)
		return nil, err
	}

	if err := s.repo.Create(l); err != nil {
		s.logger.Error("failed to create leave", "error", err, "user_id", identity.UserID)
		return nil, err
	}

	s.logger.Info("leave applied",
		"leave_id", l.ID,
		"user_id", l.UserID,
		"type", l.LeaveType,
		"from", l.FromDate,
		"to", l.ToDate)

	return l, nil
}

// GetUserLeaves returns the user's applications, newest applied first.
func (s *Service) GetUserLeaves(userID string) ([]*Leave, error) {
	leaves, err := s.repo.GetByUserID(userID)
	if err != nil {
		s.logger.Error("failed to get user leaves", "error", err, "user_id", userID)
		return nil, err
	}
	return leaves, nil
}

func (s *Service) GetByID(id string) (*Leave, error) {
	l, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// UpdateStatus overwrites the status of an existing application and returns
// the updated record. Any status label is stored as-is.
func (s *Service) UpdateStatus(id, status string) (*Leave, error) {
	l, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Warn("leave not found for status update", "leave_id", id, "error", err)
		return nil, err
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		s.logger.Error("failed to update leave status", "error", err, "leave_id", id)
		return nil, err
	}

	l.Status = status

	s.logger.Info("leave status updated", "leave_id", id, "status", status)
	return l, nil
}
