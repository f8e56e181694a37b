package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"team-tracker/internal/model"
	"team-tracker/internal/repository"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type memTaskStore struct {
	tasks  []model.Task
	nextID uint
	err    error
}

func (m *memTaskStore) Create(_ context.Context, task *model.Task) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	task.ID = m.nextID
	m.tasks = append(m.tasks, *task)
	return nil
}

func (m *memTaskStore) List(context.Context) ([]model.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *memTaskStore) FindByID(_ context.Context, taskID uint) (*model.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, t := range m.tasks {
		if t.ID == taskID {
			found := t
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memTaskStore) Update(_ context.Context, taskID uint, upd model.TaskUpdate) error {
	for i := range m.tasks {
		if m.tasks[i].ID != taskID {
			continue
		}
		if upd.Completed != nil {
			m.tasks[i].Completed = *upd.Completed
		}
		if upd.Description != nil {
			m.tasks[i].Description = *upd.Description
		}
		if upd.Deadline != nil {
			m.tasks[i].Deadline = *upd.Deadline
		}
		if upd.Assignee != nil {
			m.tasks[i].Assignee = *upd.Assignee
		}
	}
	return nil
}

func (m *memTaskStore) Delete(_ context.Context, taskID uint) error {
	kept := m.tasks[:0]
	for _, t := range m.tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	m.tasks = kept
	return nil
}

type memLateStore struct {
	events []model.LateEvent
	last   repository.LateFilter
}

func (m *memLateStore) Create(_ context.Context, event *model.LateEvent) error {
	event.ID = uint(len(m.events) + 1)
	m.events = append(m.events, *event)
	return nil
}

func (m *memLateStore) List(_ context.Context, filter repository.LateFilter) ([]model.LateEvent, error) {
	m.last = filter
	var out []model.LateEvent
	for _, e := range m.events {
		if filter.Date != "" && e.Date != filter.Date {
			continue
		}
		if filter.Employee != "" && e.Employee != filter.Employee {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

var errStoreDown = errors.New("store down")
