package bot

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"team-tracker/internal/action"
	"team-tracker/internal/repository"
	"team-tracker/internal/service"
)

// Empty-state texts of the list screens.
var emptyListText = map[service.TaskFilter]string{
	service.FilterAll:     "Список заданий пуст.",
	service.FilterActive:  "Активных заданий нет.",
	service.FilterDone:    "Выполненных заданий нет.",
	service.FilterOverdue: "Просроченных заданий нет.",
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb == nil || cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
		return nil
	}

	act, err := action.Parse(cb.Data)
	if err != nil {
		b.answer(cb.ID, textUnknownAction)
		b.log.Warn("bad callback data", "user", cb.From.ID, "data", cb.Data, "err", err)
		return nil
	}

	b.log.Info("callback", "user", cb.From.ID, "action", cb.Data)
	chatID, messageID := cb.Message.Chat.ID, cb.Message.MessageID

	switch act.Kind {
	case action.MainMenu:
		b.answer(cb.ID, "")
		return b.edit(chatID, messageID, textMainMenu, mainMenuKeyboard())
	case action.Help:
		b.answer(cb.ID, "")
		return b.edit(chatID, messageID, textHelp, mainMenuKeyboard())
	case action.AddTask:
		b.answer(cb.ID, "")
		return b.edit(chatID, messageID, textAddTask, backKeyboard())
	case action.ListAll:
		b.answer(cb.ID, "")
		return b.showTasks(ctx, chatID, messageID, service.FilterAll)
	case action.ListActive:
		b.answer(cb.ID, "")
		return b.showTasks(ctx, chatID, messageID, service.FilterActive)
	case action.ListDone:
		b.answer(cb.ID, "")
		return b.showTasks(ctx, chatID, messageID, service.FilterDone)
	case action.ListOverdue:
		b.answer(cb.ID, "")
		return b.showTasks(ctx, chatID, messageID, service.FilterOverdue)
	case action.AddLate:
		b.answer(cb.ID, "")
		b.sessions.set(cb.From.ID, stateAwaitingLate)
		return b.edit(chatID, messageID, textAddLate, backKeyboard())
	case action.ListLate:
		b.answer(cb.ID, "")
		return b.showLate(ctx, chatID, messageID)
	case action.Complete:
		return b.completeFromButton(ctx, cb, act.TaskID)
	case action.Delete:
		return b.deleteFromButton(ctx, cb, act.TaskID)
	default:
		b.answer(cb.ID, textUnknownAction)
		return nil
	}
}

// showTasks renders a filtered list into the menu message.
func (b *Bot) showTasks(ctx context.Context, chatID int64, messageID int, filter service.TaskFilter) error {
	tasks, err := b.svc.Tasks.List(ctx, filter)
	if err != nil {
		return b.replyFailure(chatID, fmt.Errorf("list tasks: %w", err))
	}
	view, ok := service.FormatTaskList(tasks, b.clock.Now())
	if !ok {
		return b.edit(chatID, messageID, emptyListText[filter], listFilterKeyboard())
	}
	return b.edit(chatID, messageID, view.Text, taskListKeyboard(view.Rows))
}

func (b *Bot) showLate(ctx context.Context, chatID int64, messageID int) error {
	events, err := b.svc.Late.List(ctx, repository.LateFilter{})
	if err != nil {
		return b.replyFailure(chatID, fmt.Errorf("list late events: %w", err))
	}
	text := service.FormatLateEvents(events)
	if text == "" {
		text = textLateEmpty
	}
	return b.edit(chatID, messageID, text, backKeyboard())
}

// After completing or deleting, the unfiltered list is shown whatever screen
// the button came from.
func (b *Bot) completeFromButton(ctx context.Context, cb *tgbotapi.CallbackQuery, taskID uint) error {
	task, err := b.svc.Tasks.Complete(ctx, taskID)
	if errors.Is(err, service.ErrTaskNotFound) {
		b.answer(cb.ID, textTaskNotFound)
		return nil
	}
	if err != nil {
		b.answer(cb.ID, textStoreFailure)
		return fmt.Errorf("complete task %d: %w", taskID, err)
	}

	b.log.Info("task completed", "task", task.ID, "user", cb.From.ID)
	b.answer(cb.ID, fmt.Sprintf("Задание #%d отмечено как выполненное!", task.ID))
	return b.showTasks(ctx, cb.Message.Chat.ID, cb.Message.MessageID, service.FilterAll)
}

func (b *Bot) deleteFromButton(ctx context.Context, cb *tgbotapi.CallbackQuery, taskID uint) error {
	task, err := b.svc.Tasks.Delete(ctx, taskID)
	if errors.Is(err, service.ErrTaskNotFound) {
		b.answer(cb.ID, textTaskNotFound)
		return nil
	}
	if err != nil {
		b.answer(cb.ID, textStoreFailure)
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}

	b.log.Info("task deleted", "task", task.ID, "user", cb.From.ID)
	b.answer(cb.ID, fmt.Sprintf("Задание #%d удалено!", task.ID))
	return b.showTasks(ctx, cb.Message.Chat.ID, cb.Message.MessageID, service.FilterAll)
}
