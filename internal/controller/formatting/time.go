package formatting

import (
	"time"

	"github.com/dkhalov/planner_bot/internal/timeutil"
)

// Дни недели нумеруются с понедельника: 0 = Пн ... 6 = Вс

var weekdayNames = []string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
	"Воскресенье",
}

var weekdayShortNames = []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

// WeekdayName возвращает название дня недели на русском
func WeekdayName(day int) string {
	if day >= 0 && day < len(weekdayNames) {
		return weekdayNames[day]
	}
	return "Неизвестно"
}

// WeekdayShortName возвращает краткое название дня недели
func WeekdayShortName(day int) string {
	if day >= 0 && day < len(weekdayShortNames) {
		return weekdayShortNames[day]
	}
	return "?"
}

// FormatTime форматирует момент времени как ЧЧ:ММ по Москве
func FormatTime(t time.Time) string {
	return t.In(timeutil.Moscow).Format("15:04")
}
