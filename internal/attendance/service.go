package attendance

import (
	"errors"
	"log/slog"
	"time"
)

// Repository defines the data access methods for attendance records
type Repository interface {
	Create(a *Attendance) error
	GetByUserAndDateRange(userID string, start, end time.Time) (*Attendance, error)
	GetRecentByUser(userID string, limit int) ([]*Attendance, error)
	Update(a *Attendance) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// GetToday returns the user's record for the current calendar day, or
// ErrNotFound when none exists.
func (s *Service) GetToday(userID string) (*Attendance, error) {
	start, end := DayBounds(s.now())
	return s.repo.GetByUserAndDateRange(userID, start, end)
}

// GetRecent returns up to limit most-recent records, newest first.
func (s *Service) GetRecent(userID string, limit int) ([]*Attendance, error) {
	if limit <= 0 {
		limit = 7
	}
	records, err := s.repo.GetRecentByUser(userID, limit)
	if err != nil {
		s.logger.Error("failed to get attendance history", "error", err, "user_id", userID)
		return nil, err
	}
	return records, nil
}

// CheckIn creates today's record. At most one record per user per day: a
// second check-in on the same day fails with ErrAlreadyCheckedIn.
func (s *Service) CheckIn(userID string) (*Attendance, error) {
	now := s.now()
	start, end := DayBounds(now)

	existing, err := s.repo.GetByUserAndDateRange(userID, start, end)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error("failed to look up today's attendance", "error", err, "user_id", userID)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyCheckedIn
	}

	a := NewCheckIn(userID, now)
	if err := s.repo.Create(a); err != nil {
		s.logger.Error("failed to create attendance record", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("checked in", "attendance_id", a.ID, "user_id", userID)
	return a, nil
}

// CheckOut stamps the check-out time on today's record.
func (s *Service) CheckOut(userID string) (*Attendance, error) {
	now := s.now()
	start, end := DayBounds(now)

	a, err := s.repo.GetByUserAndDateRange(userID, start, end)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotCheckedIn
		}
		return nil, err
	}

	a.CheckOutTime = &now
	if err := s.repo.Update(a); err != nil {
		s.logger.Error("failed to update attendance record", "error", err, "attendance_id", a.ID)
		return nil, err
	}

	s.logger.Info("checked out", "attendance_id", a.ID, "user_id", userID)
	return a, nil
}
