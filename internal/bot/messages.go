package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"team-tracker/internal/model"
	"team-tracker/internal/parser"
	"team-tracker/internal/service"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil || msg.Chat == nil {
		return nil
	}

	if msg.IsCommand() {
		b.log.Info("command", "user", msg.From.ID, "command", msg.Command())
		return b.handleCommand(ctx, msg)
	}

	if strings.TrimSpace(msg.Text) == "" {
		return nil
	}

	switch b.sessions.consume(msg.From.ID, msg.Text) {
	case intakeLate:
		return b.recordLate(ctx, msg, msg.Text, mentionsOf(msg))
	case intakeTask:
		return b.createTask(ctx, msg, msg.Text, mentionsOf(msg))
	default:
		return b.sendText(msg.Chat.ID, textUnrecognized, nil)
	}
}

func (b *Bot) createTask(ctx context.Context, msg *tgbotapi.Message, text string, mentions []parser.Mention) error {
	task, err := b.svc.Tasks.CreateFromMessage(ctx, text, mentions)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUnrecognizedMessage):
		return b.sendText(msg.Chat.ID, textUnrecognized, nil)
	case errors.Is(err, service.ErrMissingTaskFields):
		return b.sendText(msg.Chat.ID, textMissingTask, nil)
	case errors.Is(err, parser.ErrInvalidDate):
		return b.sendText(msg.Chat.ID, textInvalidDate, nil)
	default:
		return b.replyFailure(msg.Chat.ID, fmt.Errorf("create task: %w", err))
	}

	b.log.Info("task created", "task", task.ID, "user", msg.From.ID, "assignee", task.Assignee)

	reply := fmt.Sprintf("✅ Задание #%d добавлено!\n\nЗадание: %s\nДедлайн: %s\nСотрудник: %s",
		task.ID, html.EscapeString(task.Description), task.Deadline, html.EscapeString(task.Assignee))
	return b.sendText(msg.Chat.ID, reply, mainMenuKeyboard())
}

func (b *Bot) recordLate(ctx context.Context, msg *tgbotapi.Message, text string, mentions []parser.Mention) error {
	event, err := b.svc.Late.Record(ctx, service.LateReport{
		Text:     text,
		Mentions: mentions,
		Reporter: reporterOf(msg.From),
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrMissingEmployee):
		return b.sendText(msg.Chat.ID, textMissingLate, mainMenuKeyboard())
	case errors.Is(err, parser.ErrInvalidDate):
		return b.sendText(msg.Chat.ID, textInvalidLate, mainMenuKeyboard())
	default:
		return b.replyFailure(msg.Chat.ID, fmt.Errorf("record late event: %w", err))
	}

	b.log.Info("late event recorded", "event", event.ID, "employee", event.Employee, "user", msg.From.ID)

	var sb strings.Builder
	sb.WriteString("✅ Опоздание зафиксировано!\n\n")
	sb.WriteString(fmt.Sprintf("Сотрудник: %s\n", html.EscapeString(event.Employee)))
	sb.WriteString(fmt.Sprintf("Дата: %s", event.Date))
	if late := model.Value(event.LateTime); late != "" {
		sb.WriteString(fmt.Sprintf("\nВремя опоздания: %s", html.EscapeString(late)))
	}
	return b.sendText(msg.Chat.ID, sb.String(), mainMenuKeyboard())
}

// mentionsOf converts Telegram entities into parser annotations.
func mentionsOf(msg *tgbotapi.Message) []parser.Mention {
	var mentions []parser.Mention
	for _, e := range msg.Entities {
		switch e.Type {
		case "mention":
			mentions = append(mentions, parser.Mention{Kind: parser.MentionHandle, Offset: e.Offset, Length: e.Length})
		case "text_mention":
			if e.User == nil {
				continue
			}
			mentions = append(mentions, parser.Mention{
				Kind:      parser.MentionUser,
				Offset:    e.Offset,
				Length:    e.Length,
				Username:  e.User.UserName,
				FirstName: e.User.FirstName,
			})
		}
	}
	return mentions
}

// reporterOf identifies who filed a report: the handle, else the first name.
func reporterOf(user *tgbotapi.User) string {
	if user == nil {
		return ""
	}
	if user.UserName != "" {
		return "@" + user.UserName
	}
	return user.FirstName
}
