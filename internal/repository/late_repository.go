package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"team-tracker/internal/model"
	"team-tracker/internal/parser"
)

// LateFilter narrows LateEventRepository.List; empty fields match everything.
type LateFilter struct {
	Date     string
	Employee string
}

// LateEventRepository stores tardiness reports.
type LateEventRepository struct {
	db *gorm.DB
}

func NewLateEventRepository(db *gorm.DB) *LateEventRepository {
	return &LateEventRepository{db: db}
}

func (r *LateEventRepository) Create(ctx context.Context, event *model.LateEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("create late event: %w", err)
	}
	return nil
}

// List returns matching events, newest date first and, within a date, the
// latest report first.
func (r *LateEventRepository) List(ctx context.Context, filter LateFilter) ([]model.LateEvent, error) {
	query := r.db.WithContext(ctx).Model(&model.LateEvent{})
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}
	if filter.Employee != "" {
		query = query.Where("employee = ?", filter.Employee)
	}

	var events []model.LateEvent
	if err := query.Order("id DESC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list late events: %w", err)
	}

	// Dates are DD.MM.YYYY text, so SQL ordering would be lexicographic.
	sort.SliceStable(events, func(i, j int) bool {
		di, dj := parser.Orderable(events[i].Date), parser.Orderable(events[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return createdAt(events[i]).After(createdAt(events[j]))
	})
	return events, nil
}

func createdAt(e model.LateEvent) time.Time {
	t, err := time.Parse(parser.TimestampLayout, e.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
