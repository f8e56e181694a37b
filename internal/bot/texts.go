package bot

const (
	textMainMenu = "👋 <b>Трекер заданий</b>\n" +
		"Добавляйте задания сообщением, отмечайте выполненные и фиксируйте опоздания.\n\n" +
		"Выберите действие:"

	textHelp = "ℹ️ <b>Помощь</b>\n\n" +
		"<b>Добавить задание</b> — отправьте сообщение:\n" +
		"<code>Задание: Подготовить отчёт\nДедлайн: 10.01.2026\nСотрудник: @ivan</code>\n" +
		"Сотрудника можно не указывать строкой — достаточно упомянуть его через @.\n\n" +
		"<b>Команды</b>\n" +
		"• /menu — главное меню\n" +
		"• /add_task — как добавить задание\n" +
		"• /list_tasks — списки заданий\n" +
		"• /complete_task &lt;id&gt; — отметить выполненным\n" +
		"• /delete_task &lt;id&gt; — удалить задание\n" +
		"• /edit_task &lt;id&gt; — изменить поля задания\n" +
		"• /late — зафиксировать опоздание\n" +
		"• /late_list [ДД.ММ.ГГГГ] — список опозданий\n" +
		"• /report — сводка по просроченным заданиям\n" +
		"• /cancel — отменить ввод"

	textAddTask = "➕ <b>Новое задание</b>\n" +
		"Отправьте сообщение в формате:\n\n" +
		"<code>Задание: описание задачи\nДедлайн: ДД.ММ.ГГГГ\nСотрудник: @username</code>\n\n" +
		"Дату можно указать как ДД.ММ.ГГ. Вместо строки «Сотрудник» можно упомянуть человека через @."

	textAddLate = "🚶 <b>Опоздание</b>\n" +
		"Отправьте следующим сообщением:\n\n" +
		"<code>Сотрудник: @username\nОпоздал на: 15 минут\nДата: ДД.ММ.ГГГГ</code>\n\n" +
		"Дата необязательна — по умолчанию сегодня. Сотрудника можно упомянуть через @."

	textEditTask = "Укажите ID и новые значения, например:\n" +
		"<code>/edit_task 3\nДедлайн: 15.01.2026\nСотрудник: @anna</code>"

	textChooseList     = "Выберите категорию заданий:"
	textUnrecognized   = "Не понимаю это сообщение. Используйте команды:\n/add_task — чтобы узнать, как добавить задание\n/list_tasks — чтобы посмотреть все задания\n/help — все команды"
	textMissingTask    = "Ошибка! Укажите задание и дедлайн."
	textInvalidDate    = "Неверный формат даты! Используйте:\n• ДД.ММ.ГГГГ (например, 10.01.2026)\n• ДД.ММ.ГГ (например, 10.01.26)"
	textMissingLate    = "Ошибка! Укажите сотрудника (имя или @username).\nВыберите «Назначить опоздавшего», чтобы попробовать снова."
	textInvalidLate    = "Неверный формат даты! Используйте ДД.ММ.ГГГГ или ДД.ММ.ГГ.\nВыберите «Назначить опоздавшего», чтобы попробовать снова."
	textNonNumericID   = "ID должен быть числом!"
	textTaskNotFound   = "Задание не найдено!"
	textNothingToEdit  = "Не нашёл полей для изменения. Используйте строки «Задание:», «Дедлайн:», «Сотрудник:»."
	textStoreFailure   = "⚠️ Не удалось выполнить действие, попробуйте позже."
	textUnknownAction  = "Неизвестное действие"
	textUnknownCommand = "Команда не поддерживается. Загляни в /help."
	textCancelled      = "⏪ Ввод отменён."
	textLateEmpty      = "Список опозданий пуст! ✅"
)
