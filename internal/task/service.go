package task

import (
	"log/slog"
)

// Repository defines the data access methods for tasks
type Repository interface {
	Create(t *Task) error
	GetByID(id string) (*Task, error)
	GetAll() ([]*Task, error)
	GetByAssignee(userID string) ([]*Task, error)
	UpdateStatus(id string, status Status) error
	Delete(id string) error
}

// Service handles task business logic
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

// Create persists a new pending task. The acting identity becomes the
// creator; assignee existence is not checked here.
func (s *Service) Create(dto CreateTaskDTO, createdBy string) (*Task, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("task validation failed", "error", err, "created_by", createdBy)
		return nil, err
	}

	t, err := NewTask(dto.Title, dto.Description, dto.AssignedTo, dto.ParsedDueDate(), createdBy)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to create task", "error", err, "created_by", createdBy)
		return nil, err
	}

	s.logger.Info("task created",
		"task_id", t.ID,
		"assigned_to", t.AssignedTo,
		"created_by", createdBy)

	return t, nil
}

func (s *Service) GetAll() ([]*Task, error) {
	tasks, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *Service) GetByID(id string) (*Task, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByAssignee(userID string) ([]*Task, error) {
	tasks, err := s.repo.GetByAssignee(userID)
	if err != nil {
		s.logger.Error("failed to list tasks for assignee", "error", err, "user_id", userID)
		return nil, err
	}
	return tasks, nil
}

// UpdateStatus parses the label against the recognized set and persists the
// canonical value. The stored task is untouched when the label is unknown.
func (s *Service) UpdateStatus(id, label string) (*Task, error) {
	status, err := ParseStatus(label)
	if err != nil {
		s.logger.Warn("rejected task status label", "task_id", id, "label", label)
		return nil, err
	}

	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		s.logger.Error("failed to update task status", "error", err, "task_id", id)
		return nil, err
	}

	t.Status = status

	s.logger.Info("task status updated", "task_id", id, "status", status)
	return t, nil
}

// Delete removes a task by id. Deleting an absent task is a no-op; the
// operation is idempotent.
func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete task", "error", err, "task_id", id)
		return err
	}

	s.logger.Info("task deleted", "task_id", id)
	return nil
}
