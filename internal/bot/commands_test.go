package bot

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-tracker/internal/model"
	"team-tracker/internal/parser"
	"team-tracker/internal/repository"
)

func TestHandleCommand_StaticScreens(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "/start", want: textMainMenu},
		{text: "/menu", want: textMainMenu},
		{text: "/help", want: textHelp},
		{text: "/add_task", want: textAddTask},
		{text: "/list_tasks", want: textChooseList},
		{text: "/late_list", want: textLateEmpty},
		{text: "/edit_task", want: textEditTask},
		{text: "/frobnicate", want: textUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			f := newFixture(t)
			require.NoError(t, f.bot.handleMessage(context.Background(), commandMessage(tt.text)))
			assert.Equal(t, tt.want, f.client.lastText(t))
		})
	}
}

func TestHandleCommand_AddTaskWithBody(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	text := "/add_task Задание: созвон\nДедлайн: 07.01.25\n@anna"
	mention := tgbotapi.MessageEntity{Type: "mention", Offset: 44, Length: 5}
	require.NoError(t, f.bot.handleMessage(ctx, commandMessage(text, mention)))

	tasks, err := f.tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "созвон", tasks[0].Description)
	assert.Equal(t, "07.01.2025", tasks[0].Deadline)
	assert.Equal(t, "@anna", tasks[0].Assignee)
}

func TestHandleCommand_CompleteAndDelete(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "complete", text: "/complete_task 1", want: "Задание #1 отмечено как выполненное!"},
		{name: "complete twice is fine", text: "/complete_task 2", want: "Задание #2 отмечено как выполненное!"},
		{name: "delete", text: "/delete_task 1", want: "Задание #1 удалено!"},
		{name: "missing id", text: "/complete_task", want: "Укажите ID задания: /complete_task &lt;id&gt;"},
		{name: "non numeric id", text: "/delete_task abc", want: textNonNumericID},
		{name: "negative id", text: "/complete_task -1", want: textNonNumericID},
		{name: "unknown id", text: "/delete_task 42", want: textTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.seedTask(t, "Открытая", "10.01.2025", false)
			f.seedTask(t, "Закрытая", "03.01.2025", true)

			require.NoError(t, f.bot.handleMessage(context.Background(), commandMessage(tt.text)))
			assert.Equal(t, tt.want, f.client.lastText(t))
		})
	}
}

func TestHandleCommand_EditTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTask(t, "Отчёт", "10.01.2025", false)

	require.NoError(t, f.bot.handleMessage(ctx, commandMessage("/edit_task 1\nДедлайн: 15.1.25\nСотрудник: anna")))
	assert.Contains(t, f.client.lastText(t), "Задание #1 обновлено")

	task, err := f.tasks.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Отчёт", task.Description)
	assert.Equal(t, "15.01.2025", task.Deadline)
	assert.Equal(t, "@anna", task.Assignee)
	assert.False(t, task.Completed)
}

func TestHandleCommand_EditTaskErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "no fields", text: "/edit_task 1 просто текст", want: textNothingToEdit},
		{name: "bad date", text: "/edit_task 1\nДедлайн: 32.01.2025", want: textInvalidDate},
		{name: "unknown task", text: "/edit_task 9\nЗадание: новое", want: textTaskNotFound},
		{name: "bad id", text: "/edit_task x\nЗадание: новое", want: textNonNumericID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.seedTask(t, "Отчёт", "10.01.2025", false)

			require.NoError(t, f.bot.handleMessage(context.Background(), commandMessage(tt.text)))
			assert.Equal(t, tt.want, f.client.lastText(t))

			task, err := f.tasks.FindByID(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, "Отчёт", task.Description)
			assert.Equal(t, "10.01.2025", task.Deadline)
		})
	}
}

func TestHandleCommand_LateAndCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.bot.handleMessage(ctx, commandMessage("/late")))
	assert.Equal(t, stateAwaitingLate, f.bot.sessions.get(testUserID))
	assert.Equal(t, textAddLate, f.client.lastText(t))

	require.NoError(t, f.bot.handleMessage(ctx, commandMessage("/cancel")))
	assert.Equal(t, stateIdle, f.bot.sessions.get(testUserID))
	assert.Equal(t, textCancelled, f.client.lastText(t))
}

func TestHandleCommand_LateWithBody(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.bot.handleMessage(ctx, commandMessage("/late Сотрудник: petr\nВремя: 5 минут")))
	assert.Equal(t, stateIdle, f.bot.sessions.get(testUserID))

	events, err := f.late.List(ctx, repository.LateFilter{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "@petr", events[0].Employee)
	assert.Equal(t, "5 минут", model.Value(events[0].LateTime))
}

func TestHandleCommand_LateListByDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, e := range []model.LateEvent{
		{Employee: "@petr", Date: "04.01.2025", CreatedAt: "04.01.2025 10:00"},
		{Employee: "@anna", Date: "05.01.2025", CreatedAt: "05.01.2025 10:00"},
	} {
		event := e
		require.NoError(t, f.late.Create(ctx, &event))
	}

	require.NoError(t, f.bot.handleMessage(ctx, commandMessage("/late_list 4.1.25")))
	text := f.client.lastText(t)
	assert.Contains(t, text, "@petr")
	assert.NotContains(t, text, "@anna")

	require.NoError(t, f.bot.handleMessage(ctx, commandMessage("/late_list 01.01.2025")))
	assert.Equal(t, textLateEmpty, f.client.lastText(t))

	require.NoError(t, f.bot.handleMessage(ctx, commandMessage("/late_list вчера")))
	assert.Equal(t, textInvalidDate, f.client.lastText(t))
}

func TestHandleCommand_Report(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.bot.handleMessage(context.Background(), commandMessage("/report")))
	assert.Contains(t, f.client.lastText(t), "Сводка по заданиям")
}

func TestCommandBody_ShiftsMentions(t *testing.T) {
	msg := commandMessage("/late Пётр опоздал @petr",
		tgbotapi.MessageEntity{Type: "mention", Offset: 19, Length: 5},
	)

	body, mentions := commandBody(msg)
	assert.Equal(t, "Пётр опоздал @petr", body)
	require.Len(t, mentions, 1)
	assert.Equal(t, parser.Mention{Kind: parser.MentionHandle, Offset: 13, Length: 5}, mentions[0])

	handle, _, ok := parser.FirstMention(body, mentions)
	require.True(t, ok)
	assert.Equal(t, "@petr", handle)
}

func TestSplitFirstField(t *testing.T) {
	first, rest := splitFirstField("  12\nЗадание: x ")
	assert.Equal(t, "12", first)
	assert.Equal(t, "\nЗадание: x", rest)

	first, rest = splitFirstField("")
	assert.Empty(t, first)
	assert.Empty(t, rest)
}
