package keyboard

import (
	"fmt"

	"github.com/dkhalov/planner_bot/internal/controller/formatting"
	"github.com/go-telegram/bot/models"
)

// Клавиатуры всех экранов бота. Callback data — контракт между
// клавиатурами и роутером callbacks.

// Schedule клавиатура недельного обзора: смена ника, обновление времени
// по дням (0 = понедельник) и кнопка обновления экрана
func Schedule() *models.InlineKeyboardMarkup {
	dayButton := func(day int) models.InlineKeyboardButton {
		return Button(
			fmt.Sprintf("%s обн время", formatting.WeekdayShortName(day)),
			fmt.Sprintf("set_time_%d", day),
		)
	}

	return NewBuilder().
		Row(Button("Сменить ник", "change_nick")).
		Row(dayButton(0), dayButton(1), dayButton(2)).
		Row(dayButton(3), dayButton(4), dayButton(5)).
		Row(dayButton(6), Button("Обновить", "show_schedule")).
		Build()
}

// DailyQuestion четыре варианта ответа на ежедневный вопрос
func DailyQuestion() *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(
			Button("Готов", "ready"),
			Button("Скорее готов", "probably_ready"),
		).
		Row(
			Button("Скорее не готов", "probably_not_ready"),
			Button("Не готов", "not_ready"),
		).
		Build()
}

// BackToSchedule одна кнопка возврата к недельному обзору
func BackToSchedule() *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(Button("📅 К расписанию", "show_schedule")).
		Build()
}

// Back кнопка «Назад» с произвольной целью навигации
// (show_schedule или daily_question)
func Back(target string) *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(Button("↩️ Назад", target)).
		Build()
}
