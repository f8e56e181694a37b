package service

import (
	"context"

	"team-tracker/internal/model"
	"team-tracker/internal/parser"
	"team-tracker/internal/repository"
)

// LateStore is the persistence the tardiness service needs.
type LateStore interface {
	Create(ctx context.Context, event *model.LateEvent) error
	List(ctx context.Context, filter repository.LateFilter) ([]model.LateEvent, error)
}

// LateReport is a raw tardiness message together with its author.
type LateReport struct {
	Text     string
	Mentions []parser.Mention
	Reporter string
}

// LateService records and lists tardiness reports.
type LateService struct {
	repo  LateStore
	clock Clock
}

func NewLateService(repo LateStore, clock Clock) *LateService {
	return &LateService{repo: repo, clock: clock}
}

// Record validates a report and stores it. A report without a date is filed
// under today.
func (s *LateService) Record(ctx context.Context, report LateReport) (*model.LateEvent, error) {
	fields := parser.ParseLateEvent(report.Text, report.Mentions)
	employee := parser.NormalizeHandle(fields.Employee)
	if employee == "" {
		return nil, ErrMissingEmployee
	}

	now := s.clock.Now()
	date := parser.Today(now)
	if fields.Date != "" {
		normalized, err := parser.NormalizeDate(fields.Date)
		if err != nil {
			return nil, err
		}
		date = normalized
	}

	event := model.LateEvent{
		Employee:     employee,
		EmployeeName: model.Optional(fields.EmployeeName),
		LateTime:     model.Optional(fields.LateTime),
		Date:         date,
		MessageText:  model.Optional(report.Text),
		CreatedBy:    model.Optional(report.Reporter),
		CreatedAt:    parser.Timestamp(now),
	}
	if err := s.repo.Create(ctx, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns reports matching filter, newest first.
func (s *LateService) List(ctx context.Context, filter repository.LateFilter) ([]model.LateEvent, error) {
	if filter.Employee != "" {
		filter.Employee = parser.NormalizeHandle(filter.Employee)
	}
	if filter.Date != "" {
		date, err := parser.NormalizeDate(filter.Date)
		if err != nil {
			return nil, err
		}
		filter.Date = date
	}
	return s.repo.List(ctx, filter)
}
