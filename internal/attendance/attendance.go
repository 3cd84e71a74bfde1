package attendance

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Attendance is one user's record for a single calendar day.
type Attendance struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	UserID       string     `json:"userId" gorm:"column:user_id;not null"`
	Date         time.Time  `json:"date" gorm:"not null"`
	Status       string     `json:"status"`
	CheckInTime  time.Time  `json:"checkInTime" gorm:"column:check_in_time"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty" gorm:"column:check_out_time"`
}

func (Attendance) TableName() string {
	return "attendance"
}

const (
	StatusPresent = "present"
)

var (
	ErrNotFound         = errors.New("attendance record not found")
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	ErrNotCheckedIn     = errors.New("no check-in recorded today")
)

// DayBounds returns the [start, end) interval of t's calendar day, used for
// the today lookup.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}

// NewCheckIn records a present entry for the given moment.
func NewCheckIn(userID string, at time.Time) *Attendance {
	return &Attendance{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        at,
		Status:      StatusPresent,
		CheckInTime: at,
	}
}
