package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"team-tracker/internal/action"
	"team-tracker/internal/service"
)

const (
	menuLabelAddTask  = "➕ Добавить задание"
	menuLabelAll      = "📋 Все задания"
	menuLabelActive   = "🟢 Активные"
	menuLabelDone     = "✅ Выполненные"
	menuLabelOverdue  = "⏰ Просроченные"
	menuLabelAddLate  = "🚶 Назначить опоздавшего"
	menuLabelListLate = "📝 Список опоздавших"
	menuLabelHelp     = "❓ Помощь"
	menuLabelBack     = "◀️ Главное меню"
)

func button(label string, kind action.Kind) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(label, action.Of(kind).Data())
}

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(menuLabelAddTask, action.AddTask)),
		tgbotapi.NewInlineKeyboardRow(button(menuLabelAll, action.ListAll)),
		tgbotapi.NewInlineKeyboardRow(button(menuLabelActive, action.ListActive)),
		tgbotapi.NewInlineKeyboardRow(button(menuLabelDone, action.ListDone)),
		tgbotapi.NewInlineKeyboardRow(button(menuLabelOverdue, action.ListOverdue)),
		tgbotapi.NewInlineKeyboardRow(button(menuLabelAddLate, action.AddLate)),
		tgbotapi.NewInlineKeyboardRow(button(menuLabelListLate, action.ListLate)),
		tgbotapi.NewInlineKeyboardRow(button(menuLabelHelp, action.Help)),
	)
}

func listFilterKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(menuLabelAll, action.ListAll)),
		tgbotapi.NewInlineKeyboardRow(button(menuLabelActive, action.ListActive)),
		tgbotapi.NewInlineKeyboardRow(button(menuLabelDone, action.ListDone)),
		tgbotapi.NewInlineKeyboardRow(button(menuLabelOverdue, action.ListOverdue)),
		tgbotapi.NewInlineKeyboardRow(button(menuLabelBack, action.MainMenu)),
	)
}

func backKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(menuLabelBack, action.MainMenu)),
	)
}

// taskListKeyboard converts formatter rows into inline buttons.
func taskListKeyboard(rows [][]service.Button) tgbotapi.InlineKeyboardMarkup {
	keyboard := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Action.Data()))
		}
		keyboard = append(keyboard, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}
