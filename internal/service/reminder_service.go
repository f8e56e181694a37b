package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"team-tracker/internal/model"
	"team-tracker/internal/parser"
	"team-tracker/internal/repository"
)

// dueSoonWindow marks open tasks whose deadline is today or tomorrow.
const dueSoonWindow = 48 * time.Hour

// ReminderService builds the periodic digest of overdue work and today's tardiness.
type ReminderService struct {
	tasks TaskStore
	late  LateStore
}

func NewReminderService(tasks TaskStore, late LateStore) *ReminderService {
	return &ReminderService{tasks: tasks, late: late}
}

// Digest renders the report for now.
func (s *ReminderService) Digest(ctx context.Context, now time.Time) (string, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return "", err
	}

	today := parser.Today(now)
	lateToday, err := s.late.List(ctx, repository.LateFilter{Date: today})
	if err != nil {
		return "", err
	}

	var overdue, dueSoon []model.Task
	for _, task := range SortByDeadline(tasks) {
		switch {
		case task.Completed:
		case IsOverdue(task, now):
			overdue = append(overdue, task)
		case isDueSoon(task, now):
			dueSoon = append(dueSoon, task)
		}
	}

	var builder strings.Builder
	builder.WriteString("📋 <b>Сводка по заданиям</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", today))

	builder.WriteString("⏰ <b>Просроченные</b>\n")
	if len(overdue) == 0 {
		builder.WriteString("— нет просроченных заданий\n")
	} else {
		for _, task := range overdue {
			builder.WriteString(formatDigestTask(task))
		}
	}

	builder.WriteString("\n⏳ <b>Срок сегодня или завтра</b>\n")
	if len(dueSoon) == 0 {
		builder.WriteString("— нет заданий с близким сроком\n")
	} else {
		for _, task := range dueSoon {
			builder.WriteString(formatDigestTask(task))
		}
	}

	builder.WriteString("\n🚶 <b>Опоздания сегодня</b>\n")
	if len(lateToday) == 0 {
		builder.WriteString("— опозданий нет\n")
	} else {
		for _, event := range lateToday {
			builder.WriteString(fmt.Sprintf("• %s", escape(event.DisplayName())))
			if late := model.Value(event.LateTime); late != "" {
				builder.WriteString(fmt.Sprintf(" · %s", escape(late)))
			}
			builder.WriteByte('\n')
		}
	}

	return strings.TrimSpace(builder.String()), nil
}

func isDueSoon(task model.Task, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	deadline := parser.Orderable(task.Deadline)
	return !deadline.Before(today) && deadline.Sub(today) < dueSoonWindow
}

func formatDigestTask(task model.Task) string {
	return fmt.Sprintf("• <b>#%d</b> %s · до %s · %s\n",
		task.ID, escape(task.Description), escape(task.Deadline), escape(task.Assignee))
}
