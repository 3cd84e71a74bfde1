package postgres

import (
	"errors"
	"time"

	"github.com/frahmantamala/hr-management/internal/attendance"
	"gorm.io/gorm"
)

// AttendanceRepository implements the attendance.Repository interface using GORM
type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.Repository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(a *attendance.Attendance) error {
	return r.db.Create(a).Error
}

// GetByUserAndDateRange returns the single record whose date falls within
// [start, end).
func (r *AttendanceRepository) GetByUserAndDateRange(userID string, start, end time.Time) (*attendance.Attendance, error) {
	var a attendance.Attendance
	err := r.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendance.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AttendanceRepository) GetRecentByUser(userID string, limit int) ([]*attendance.Attendance, error) {
	var records []*attendance.Attendance
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) Update(a *attendance.Attendance) error {
	return r.db.Save(a).Error
}
