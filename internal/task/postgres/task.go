package postgres

import (
	"errors"

	"github.com/frahmantamala/hr-management/internal/task"
	"gorm.io/gorm"
)

// TaskRepository implements the task.Repository interface using GORM
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) task.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(t *task.Task) error {
	return r.db.Create(t).Error
}

func (r *TaskRepository) GetByID(id string) (*task.Task, error) {
	var t task.Task
	err := r.db.Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, task.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) GetAll() ([]*task.Task, error) {
	var tasks []*task.Task
	err := r.db.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) GetByAssignee(userID string) ([]*task.Task, error) {
	var tasks []*task.Task
	err := r.db.Where("assigned_to = ?", userID).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) UpdateStatus(id string, status task.Status) error {
	res := r.db.Model(&task.Task{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// Delete removes the row if present. Absent ids are not an error.
func (r *TaskRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&task.Task{}).Error
}
