package parser

import "strings"

type field int

const (
	fieldDescription field = iota + 1
	fieldDeadline
	fieldAssignee
	fieldEmployee
	fieldLateTime
	fieldDate
)

type label struct {
	prefix string
	field  field
}

// Labels are matched against the lower-cased, trimmed line. Russian labels
// come first since they are what the bot shows in its instructions.
var taskLabels = []label{
	{"задание:", fieldDescription},
	{"задача:", fieldDescription},
	{"task:", fieldDescription},
	{"дедлайн:", fieldDeadline},
	{"срок:", fieldDeadline},
	{"deadline:", fieldDeadline},
	{"сотрудник:", fieldAssignee},
	{"исполнитель:", fieldAssignee},
	{"employee:", fieldAssignee},
	{"assignee:", fieldAssignee},
}

var lateLabels = []label{
	{"сотрудник:", fieldEmployee},
	{"имя:", fieldEmployee},
	{"employee:", fieldEmployee},
	{"name:", fieldEmployee},
	{"время:", fieldLateTime},
	{"опоздал на:", fieldLateTime},
	{"time:", fieldLateTime},
	{"late-by:", fieldLateTime},
	{"дата:", fieldDate},
	{"date:", fieldDate},
}

// TaskFields holds the raw values of a task message. Deadline is not
// normalized yet.
type TaskFields struct {
	Description string
	Deadline    string
	Assignee    string
}

// LateFields holds the raw values of a tardiness report. An empty Date means
// the reporter gave none.
type LateFields struct {
	Employee     string
	EmployeeName string
	LateTime     string
	Date         string
}

// IsTaskMessage reports whether text carries both a task and a deadline label
// somewhere in its body.
func IsTaskMessage(text string) bool {
	lower := strings.ToLower(text)
	return containsLabel(lower, fieldDescription) && containsLabel(lower, fieldDeadline)
}

// ParseTask extracts task fields. Without an explicit assignee line the first
// mentioned user becomes the assignee.
func ParseTask(text string, mentions []Mention) TaskFields {
	values := scanLabels(text, taskLabels)
	fields := TaskFields{
		Description: values[fieldDescription],
		Deadline:    values[fieldDeadline],
		Assignee:    values[fieldAssignee],
	}
	if fields.Assignee == "" {
		if handle, _, ok := FirstMention(text, mentions); ok {
			fields.Assignee = handle
		}
	}
	return fields
}

// ParseTaskEdit extracts only the labelled lines of an edit request.
func ParseTaskEdit(text string) TaskFields {
	values := scanLabels(text, taskLabels)
	return TaskFields{
		Description: values[fieldDescription],
		Deadline:    values[fieldDeadline],
		Assignee:    values[fieldAssignee],
	}
}

// ParseLateEvent extracts tardiness report fields with the same mention
// fallback as ParseTask.
func ParseLateEvent(text string, mentions []Mention) LateFields {
	values := scanLabels(text, lateLabels)
	fields := LateFields{
		Employee: values[fieldEmployee],
		LateTime: values[fieldLateTime],
		Date:     values[fieldDate],
	}
	if fields.Employee == "" {
		if handle, name, ok := FirstMention(text, mentions); ok {
			fields.Employee = handle
			fields.EmployeeName = name
		}
	}
	return fields
}

// scanLabels applies the line grammar. A repeated label overwrites the
// earlier value.
func scanLabels(text string, labels []label) map[field]string {
	values := make(map[field]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		for _, l := range labels {
			if !strings.HasPrefix(lower, l.prefix) {
				continue
			}
			if idx := strings.Index(line, ":"); idx >= 0 {
				values[l.field] = strings.TrimSpace(line[idx+1:])
			}
			break
		}
	}
	return values
}

func containsLabel(lower string, f field) bool {
	for _, l := range taskLabels {
		if l.field == f && strings.Contains(lower, l.prefix) {
			return true
		}
	}
	return false
}
