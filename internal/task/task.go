package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work assigned to a user.
type Task struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	AssignedTo  string    `json:"assignedTo" gorm:"column:assigned_to;not null"`
	DueDate     time.Time `json:"dueDate" gorm:"column:due_date;type:date"`
	Status      Status    `json:"status"`
	CreatedBy   string    `json:"createdBy" gorm:"column:created_by"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// Status is the enumerated task state. Input labels are parsed once at the
// boundary via ParseStatus; everything past that point holds a canonical
// value.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrUnknownStatus    = errors.New("unknown task status")
	ErrAssigneeRequired = errors.New("assignee is required")
)

// ParseStatus maps a case-insensitive label to its canonical status value.
func ParseStatus(label string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(label))) {
	case StatusPending:
		return StatusPending, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, label)
	}
}

// NewTask builds a pending task created by the acting identity.
func NewTask(title, description, assignedTo string, dueDate time.Time, createdBy string) (*Task, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if assignedTo == "" {
		return nil, ErrAssigneeRequired
	}

	return &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		AssignedTo:  assignedTo,
		DueDate:     dueDate,
		Status:      StatusPending,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}, nil
}
