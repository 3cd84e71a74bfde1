package leave

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Leave is a single leave application. UserEmail is denormalized from the
// applicant's token at creation time.
type Leave struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"column:user_id;not null"`
	UserEmail string    `json:"userEmail" gorm:"column:user_email"`
	FromDate  time.Time `json:"fromDate" gorm:"column:from_date;type:date"`
	ToDate    time.Time `json:"toDate" gorm:"column:to_date;type:date"`
	LeaveType string    `json:"leaveType" gorm:"column:leave_type"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	AppliedOn time.Time `json:"appliedOn" gorm:"column:applied_on"`
}

func (Leave) TableName() string {
	return "leaves"
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var (
	ErrLeaveNotFound    = errors.New("leave not found")
	ErrInvalidDateRange = errors.New("from date cannot be after to date")
)

// NewLeave builds a pending application with a generated id and a server-set
// applied-on timestamp. The date-order invariant is checked here so both
// apply variants share it.
func NewLeave(userID, userEmail string, fromDate, toDate time.Time, leaveType, reason string) (*Leave, error) {
	if fromDate.After(toDate) {
		return nil, ErrInvalidDateRange
	}

	return &Leave{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserEmail: userEmail,
		FromDate:  fromDate,
		ToDate:    toDate,
		LeaveType: leaveType,
		Reason:    reason,
		Status:    StatusPending,
		AppliedOn: time.Now(),
	}, nil
}
