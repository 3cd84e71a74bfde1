package task

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

// CreateTaskDTO is the request payload for creating a task.
type CreateTaskDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	DueDate     string `json:"dueDate"`
}

func (d CreateTaskDTO) Validate() error {
	if d.Title == "" {
		return errors.New("title is required")
	}
	if d.AssignedTo == "" {
		return errors.New("assignedTo is required")
	}
	if d.DueDate == "" {
		return errors.New("dueDate is required")
	}
	if _, err := time.Parse(dateLayout, d.DueDate); err != nil {
		return errors.New("invalid due date, expected YYYY-MM-DD")
	}
	return nil
}

func (d CreateTaskDTO) ParsedDueDate() time.Time {
	t, _ := time.Parse(dateLayout, d.DueDate)
	return t
}

// UpdateTaskStatusDTO carries the requested status label, matched
// case-insensitively against the recognized set.
type UpdateTaskStatusDTO struct {
	Status string `json:"status"`
}

func (d UpdateTaskStatusDTO) Validate() error {
	if d.Status == "" {
		return errors.New("status is required")
	}
	return nil
}
