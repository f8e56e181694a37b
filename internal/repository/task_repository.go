package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"team-tracker/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts task and fills in the id assigned by the database.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// List returns every task in insertion order.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// FindByID returns gorm.ErrRecordNotFound when the task does not exist.
func (r *TaskRepository) FindByID(ctx context.Context, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("id = ?", taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Update changes only the fields set in upd.
func (r *TaskRepository) Update(ctx context.Context, taskID uint, upd model.TaskUpdate) error {
	if upd.Empty() {
		return nil
	}

	updates := map[string]interface{}{}
	if upd.Completed != nil {
		updates["completed"] = *upd.Completed
	}
	if upd.Description != nil {
		updates["task"] = *upd.Description
	}
	if upd.Deadline != nil {
		updates["deadline"] = *upd.Deadline
	}
	if upd.Assignee != nil {
		updates["employee"] = *upd.Assignee
	}

	if err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", taskID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", taskID).
		Delete(&model.Task{}).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
