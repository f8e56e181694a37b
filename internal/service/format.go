package service

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"team-tracker/internal/action"
	"team-tracker/internal/model"
	"team-tracker/internal/parser"
)

// TaskStatus is the display state of a task.
type TaskStatus int

const (
	StatusInProgress TaskStatus = iota
	StatusOverdue
	StatusCompleted
)

func (s TaskStatus) String() string {
	switch s {
	case StatusCompleted:
		return "✅ Выполнено"
	case StatusOverdue:
		return "⏰ Просрочено"
	default:
		return "🟢 В работе"
	}
}

// Button is a labelled action rendered by the transport.
type Button struct {
	Label  string
	Action action.Action
}

// TaskListView is a rendered task list with one button row per task and a
// trailing main menu row.
type TaskListView struct {
	Text string
	Rows [][]Button
}

// IsOverdue reports whether an open task's deadline day is already behind now.
func IsOverdue(task model.Task, now time.Time) bool {
	if task.Completed {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return parser.Orderable(task.Deadline).Before(today)
}

// TaskStatusOf applies the precedence completed, overdue, in progress.
func TaskStatusOf(task model.Task, now time.Time) TaskStatus {
	switch {
	case task.Completed:
		return StatusCompleted
	case IsOverdue(task, now):
		return StatusOverdue
	default:
		return StatusInProgress
	}
}

// SortByDeadline returns a copy of tasks ordered by deadline. Equal deadlines
// keep their relative order.
func SortByDeadline(tasks []model.Task) []model.Task {
	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parser.Orderable(sorted[i].Deadline).Before(parser.Orderable(sorted[j].Deadline))
	})
	return sorted
}

// FormatTaskList renders tasks; ok is false when there is nothing to show.
func FormatTaskList(tasks []model.Task, now time.Time) (view TaskListView, ok bool) {
	if len(tasks) == 0 {
		return TaskListView{}, false
	}

	var b strings.Builder
	b.WriteString("📋 <b>Список заданий</b>\n\n")

	rows := make([][]Button, 0, len(tasks)+1)
	for _, task := range SortByDeadline(tasks) {
		b.WriteString(formatTask(task, now))

		var row []Button
		if !task.Completed {
			row = append(row, Button{Label: fmt.Sprintf("✅ Выполнить #%d", task.ID), Action: action.CompleteTask(task.ID)})
		}
		row = append(row, Button{Label: fmt.Sprintf("🗑 Удалить #%d", task.ID), Action: action.DeleteTask(task.ID)})
		rows = append(rows, row)
	}
	rows = append(rows, []Button{{Label: "◀️ Главное меню", Action: action.Of(action.MainMenu)}})

	return TaskListView{Text: strings.TrimSpace(b.String()), Rows: rows}, true
}

func formatTask(task model.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>#%d</b> %s\n", task.ID, escape(task.Description)))
	b.WriteString(fmt.Sprintf("   ⏰ Дедлайн: %s\n", escape(task.Deadline)))
	b.WriteString(fmt.Sprintf("   👤 Сотрудник: %s\n", escape(parser.NormalizeHandle(task.Assignee))))
	b.WriteString(fmt.Sprintf("   Статус: %s\n", TaskStatusOf(task, now)))
	b.WriteString(fmt.Sprintf("   🕒 Создано: %s\n", escape(task.CreatedAt)))
	b.WriteByte('\n')
	return b.String()
}

// FormatLateEvents groups reports by date, newest date first. It returns an
// empty string for an empty list.
func FormatLateEvents(events []model.LateEvent) string {
	if len(events) == 0 {
		return ""
	}

	byDate := make(map[string][]model.LateEvent)
	var dates []string
	for _, event := range events {
		if _, ok := byDate[event.Date]; !ok {
			dates = append(dates, event.Date)
		}
		byDate[event.Date] = append(byDate[event.Date], event)
	}
	sort.SliceStable(dates, func(i, j int) bool {
		return parser.Orderable(dates[i]).After(parser.Orderable(dates[j]))
	})

	var b strings.Builder
	b.WriteString("🚶 <b>Список опоздавших</b>\n\n")
	for _, date := range dates {
		b.WriteString(fmt.Sprintf("📅 <b>%s</b>\n", escape(date)))
		for _, event := range byDate[date] {
			b.WriteString(fmt.Sprintf("  • %s (%s)", escape(event.DisplayName()), escape(event.Employee)))
			if late := model.Value(event.LateTime); late != "" {
				b.WriteString(fmt.Sprintf(" — опоздал на %s", escape(late)))
			}
			b.WriteByte('\n')
			if by := model.Value(event.CreatedBy); by != "" {
				b.WriteString(fmt.Sprintf("    Отметил: %s\n", escape(by)))
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String())
}

func escape(s string) string {
	return html.EscapeString(s)
}
