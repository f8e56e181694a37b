// Package action models the identifiers carried by inline keyboard buttons.
package action

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrNonNumericID  = errors.New("task id must be a number")
)

// Kind enumerates every button the bot can receive.
type Kind int

const (
	MainMenu Kind = iota
	Help
	AddTask
	ListAll
	ListActive
	ListDone
	ListOverdue
	AddLate
	ListLate
	Complete
	Delete
)

const (
	completePrefix = "complete_"
	deletePrefix   = "delete_"
)

var simple = map[string]Kind{
	"main_menu":    MainMenu,
	"help":         Help,
	"add_task":     AddTask,
	"list_all":     ListAll,
	"list_active":  ListActive,
	"list_done":    ListDone,
	"list_overdue": ListOverdue,
	"add_late":     AddLate,
	"list_late":    ListLate,
}

// Action is a parsed button press. TaskID is set for Complete and Delete only.
type Action struct {
	Kind   Kind
	TaskID uint
}

// Of returns a parameterless action.
func Of(kind Kind) Action {
	return Action{Kind: kind}
}

// CompleteTask returns the action that marks a task done.
func CompleteTask(id uint) Action {
	return Action{Kind: Complete, TaskID: id}
}

// DeleteTask returns the action that removes a task.
func DeleteTask(id uint) Action {
	return Action{Kind: Delete, TaskID: id}
}

// Parse decodes callback data.
func Parse(data string) (Action, error) {
	if kind, ok := simple[data]; ok {
		return Action{Kind: kind}, nil
	}
	switch {
	case strings.HasPrefix(data, completePrefix):
		id, err := ParseID(strings.TrimPrefix(data, completePrefix))
		if err != nil {
			return Action{}, err
		}
		return CompleteTask(id), nil
	case strings.HasPrefix(data, deletePrefix):
		id, err := ParseID(strings.TrimPrefix(data, deletePrefix))
		if err != nil {
			return Action{}, err
		}
		return DeleteTask(id), nil
	default:
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, data)
	}
}

// ParseID parses a task id given as a command argument or callback suffix.
func ParseID(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumericID, raw)
	}
	return uint(value), nil
}

// Data renders the callback identifier.
func (a Action) Data() string {
	switch a.Kind {
	case Complete:
		return fmt.Sprintf("%s%d", completePrefix, a.TaskID)
	case Delete:
		return fmt.Sprintf("%s%d", deletePrefix, a.TaskID)
	}
	for data, kind := range simple {
		if kind == a.Kind {
			return data
		}
	}
	return ""
}
