package postgres

import (
	"errors"

	"github.com/frahmantamala/hr-management/internal/leave"
	"gorm.io/gorm"
)

// LeaveRepository implements the leave.Repository interface using GORM
type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) leave.Repository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) Create(l *leave.Leave) error {
	return r.db.Create(l).Error
}

func (r *LeaveRepository) GetByID(id string) (*leave.Leave, error) {
	var l leave.Leave
	err := r.db.Where("id = ?", id).First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *LeaveRepository) GetByUserID(userID string) ([]*leave.Leave, error) {
	var leaves []*leave.Leave
	err := r.db.Where("user_id = ?", userID).
		Order("applied_on DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *LeaveRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&leave.Leave{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}
