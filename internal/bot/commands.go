package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"unicode"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"team-tracker/internal/action"
	"team-tracker/internal/parser"
	"team-tracker/internal/repository"
	"team-tracker/internal/service"
)

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start", "menu":
		b.sessions.set(msg.From.ID, stateIdle)
		return b.sendText(chatID, textMainMenu, mainMenuKeyboard())
	case "help":
		return b.sendText(chatID, textHelp, mainMenuKeyboard())
	case "add_task":
		body, mentions := commandBody(msg)
		if !parser.IsTaskMessage(body) {
			return b.sendText(chatID, textAddTask, backKeyboard())
		}
		return b.createTask(ctx, msg, body, mentions)
	case "list_tasks":
		return b.sendText(chatID, textChooseList, listFilterKeyboard())
	case "complete_task":
		return b.completeCommand(ctx, msg)
	case "delete_task":
		return b.deleteCommand(ctx, msg)
	case "edit_task":
		return b.editCommand(ctx, msg)
	case "late":
		body, mentions := commandBody(msg)
		if strings.TrimSpace(body) != "" {
			b.sessions.set(msg.From.ID, stateIdle)
			return b.recordLate(ctx, msg, body, mentions)
		}
		b.sessions.set(msg.From.ID, stateAwaitingLate)
		return b.sendText(chatID, textAddLate, backKeyboard())
	case "late_list":
		return b.lateListCommand(ctx, msg)
	case "report":
		return b.SendReport(ctx, chatID)
	case "cancel":
		b.sessions.set(msg.From.ID, stateIdle)
		return b.sendText(chatID, textCancelled, mainMenuKeyboard())
	default:
		return b.sendText(chatID, textUnknownCommand, nil)
	}
}

func (b *Bot) completeCommand(ctx context.Context, msg *tgbotapi.Message) error {
	taskID, ok, err := b.commandTaskID(msg, "/complete_task")
	if !ok {
		return err
	}

	task, err := b.svc.Tasks.Complete(ctx, taskID)
	if errors.Is(err, service.ErrTaskNotFound) {
		return b.sendText(msg.Chat.ID, textTaskNotFound, nil)
	}
	if err != nil {
		return b.replyFailure(msg.Chat.ID, fmt.Errorf("complete task %d: %w", taskID, err))
	}

	b.log.Info("task completed", "task", task.ID, "user", msg.From.ID)
	return b.sendText(msg.Chat.ID, fmt.Sprintf("Задание #%d отмечено как выполненное!", task.ID), mainMenuKeyboard())
}

func (b *Bot) deleteCommand(ctx context.Context, msg *tgbotapi.Message) error {
	taskID, ok, err := b.commandTaskID(msg, "/delete_task")
	if !ok {
		return err
	}

	task, err := b.svc.Tasks.Delete(ctx, taskID)
	if errors.Is(err, service.ErrTaskNotFound) {
		return b.sendText(msg.Chat.ID, textTaskNotFound, nil)
	}
	if err != nil {
		return b.replyFailure(msg.Chat.ID, fmt.Errorf("delete task %d: %w", taskID, err))
	}

	b.log.Info("task deleted", "task", task.ID, "user", msg.From.ID)
	return b.sendText(msg.Chat.ID, fmt.Sprintf("Задание #%d удалено!", task.ID), mainMenuKeyboard())
}

func (b *Bot) editCommand(ctx context.Context, msg *tgbotapi.Message) error {
	rawID, rest := splitFirstField(msg.CommandArguments())
	if rawID == "" {
		return b.sendText(msg.Chat.ID, textEditTask, nil)
	}
	taskID, err := action.ParseID(rawID)
	if err != nil {
		return b.sendText(msg.Chat.ID, textNonNumericID, nil)
	}

	task, err := b.svc.Tasks.Edit(ctx, taskID, rest)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrNothingToUpdate):
		return b.sendText(msg.Chat.ID, textNothingToEdit, nil)
	case errors.Is(err, parser.ErrInvalidDate):
		return b.sendText(msg.Chat.ID, textInvalidDate, nil)
	case errors.Is(err, service.ErrTaskNotFound):
		return b.sendText(msg.Chat.ID, textTaskNotFound, nil)
	default:
		return b.replyFailure(msg.Chat.ID, fmt.Errorf("edit task %d: %w", taskID, err))
	}

	b.log.Info("task edited", "task", task.ID, "user", msg.From.ID)

	text := fmt.Sprintf("✏️ Задание #%d обновлено!\n\nЗадание: %s\nДедлайн: %s\nСотрудник: %s",
		task.ID, html.EscapeString(task.Description), task.Deadline, html.EscapeString(task.Assignee))
	return b.sendText(msg.Chat.ID, text, mainMenuKeyboard())
}

func (b *Bot) lateListCommand(ctx context.Context, msg *tgbotapi.Message) error {
	filter := repository.LateFilter{Date: strings.TrimSpace(msg.CommandArguments())}

	events, err := b.svc.Late.List(ctx, filter)
	if errors.Is(err, parser.ErrInvalidDate) {
		return b.sendText(msg.Chat.ID, textInvalidDate, nil)
	}
	if err != nil {
		return b.replyFailure(msg.Chat.ID, fmt.Errorf("list late events: %w", err))
	}

	text := service.FormatLateEvents(events)
	if text == "" {
		text = textLateEmpty
	}
	return b.sendText(msg.Chat.ID, text, backKeyboard())
}

// commandTaskID reads the numeric task id argument. When ok is false the user
// has already been answered and err is the send error, if any.
func (b *Bot) commandTaskID(msg *tgbotapi.Message, usage string) (taskID uint, ok bool, err error) {
	rawID, _ := splitFirstField(msg.CommandArguments())
	if rawID == "" {
		return 0, false, b.sendText(msg.Chat.ID, fmt.Sprintf("Укажите ID задания: %s &lt;id&gt;", usage), nil)
	}
	taskID, err = action.ParseID(rawID)
	if err != nil {
		return 0, false, b.sendText(msg.Chat.ID, textNonNumericID, nil)
	}
	return taskID, true, nil
}

// splitFirstField splits s into its first whitespace-delimited field and the
// remainder.
func splitFirstField(s string) (first, rest string) {
	s = strings.TrimSpace(s)
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx:]
}

// commandBody returns the command arguments with the message mentions shifted
// to be relative to them.
func commandBody(msg *tgbotapi.Message) (string, []parser.Mention) {
	args := msg.CommandArguments()
	if args == "" {
		return "", nil
	}

	shift := utf16Len(msg.Text) - utf16Len(args)
	var mentions []parser.Mention
	for _, m := range mentionsOf(msg) {
		if m.Offset < shift {
			continue
		}
		m.Offset -= shift
		mentions = append(mentions, m)
	}
	return args, mentions
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}
