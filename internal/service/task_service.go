package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"team-tracker/internal/model"
	"team-tracker/internal/parser"
)

// TaskStore is the persistence the task service needs.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	List(ctx context.Context) ([]model.Task, error)
	FindByID(ctx context.Context, taskID uint) (*model.Task, error)
	Update(ctx context.Context, taskID uint, upd model.TaskUpdate) error
	Delete(ctx context.Context, taskID uint) error
}

// TaskFilter selects a subset of tasks for the list screens.
type TaskFilter int

const (
	FilterAll TaskFilter = iota
	FilterActive
	FilterDone
	FilterOverdue
)

// TaskService wraps task-related business logic.
type TaskService struct {
	repo  TaskStore
	clock Clock
}

func NewTaskService(repo TaskStore, clock Clock) *TaskService {
	return &TaskService{repo: repo, clock: clock}
}

// CreateFromMessage parses a labelled chat message and stores the task.
func (s *TaskService) CreateFromMessage(ctx context.Context, text string, mentions []parser.Mention) (*model.Task, error) {
	if !parser.IsTaskMessage(text) {
		return nil, ErrUnrecognizedMessage
	}

	fields := parser.ParseTask(text, mentions)
	if fields.Description == "" || fields.Deadline == "" {
		return nil, ErrMissingTaskFields
	}

	deadline, err := parser.NormalizeDate(fields.Deadline)
	if err != nil {
		return nil, err
	}

	assignee := parser.NormalizeHandle(fields.Assignee)
	if assignee == "" {
		assignee = parser.Unspecified
	}

	task := model.Task{
		Description: fields.Description,
		Deadline:    deadline,
		Assignee:    assignee,
		CreatedAt:   parser.Timestamp(s.clock.Now()),
	}
	if err := s.repo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// List loads all tasks and keeps those matching filter. The stored order is preserved.
func (s *TaskService) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter == FilterAll {
		return tasks, nil
	}

	now := s.clock.Now()
	selected := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		var keep bool
		switch filter {
		case FilterActive:
			keep = !task.Completed
		case FilterDone:
			keep = task.Completed
		case FilterOverdue:
			keep = IsOverdue(task, now)
		}
		if keep {
			selected = append(selected, task)
		}
	}
	return selected, nil
}

// Complete marks a task done. Completing a finished task is a no-op.
func (s *TaskService) Complete(ctx context.Context, taskID uint) (*model.Task, error) {
	task, err := s.find(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Completed {
		return task, nil
	}

	done := true
	if err := s.repo.Update(ctx, taskID, model.TaskUpdate{Completed: &done}); err != nil {
		return nil, err
	}
	task.Completed = true
	return task, nil
}

// Delete removes a task and returns what was deleted.
func (s *TaskService) Delete(ctx context.Context, taskID uint) (*model.Task, error) {
	task, err := s.find(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, taskID); err != nil {
		return nil, err
	}
	return task, nil
}

// Edit applies the labelled lines of text to an existing task.
func (s *TaskService) Edit(ctx context.Context, taskID uint, text string) (*model.Task, error) {
	fields := parser.ParseTaskEdit(text)

	var upd model.TaskUpdate
	if fields.Description != "" {
		upd.Description = &fields.Description
	}
	if fields.Deadline != "" {
		deadline, err := parser.NormalizeDate(fields.Deadline)
		if err != nil {
			return nil, err
		}
		upd.Deadline = &deadline
	}
	if fields.Assignee != "" {
		assignee := parser.NormalizeHandle(fields.Assignee)
		upd.Assignee = &assignee
	}
	if upd.Empty() {
		return nil, ErrNothingToUpdate
	}

	task, err := s.find(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, taskID, upd); err != nil {
		return nil, err
	}

	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.Deadline != nil {
		task.Deadline = *upd.Deadline
	}
	if upd.Assignee != nil {
		task.Assignee = *upd.Assignee
	}
	return task, nil
}

func (s *TaskService) find(ctx context.Context, taskID uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: #%d", ErrTaskNotFound, taskID)
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}
