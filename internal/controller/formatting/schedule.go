package formatting

import (
	"fmt"
	"strings"

	"github.com/dkhalov/planner_bot/internal/model"
)

const totalDaysInWeek = 7

// NoInfoPlaceholder показывается для дня, на который ни у кого нет времени
const NoInfoPlaceholder = "Нет информации"

// NoResponsesText фиксированный текст сводки за день без ответов
const NoResponsesText = "📊 Сводка за сегодня:\n\nНет ответов от пользователей."

// FormatWeeklySchedule строит текст недельного обзора: для каждого дня
// список «ник: время», либо заглушка «Нет информации»
func FormatWeeklySchedule(entries []model.ScheduleEntry) string {
	byDay := make(map[int][]string, totalDaysInWeek)
	for _, entry := range entries {
		if entry.StartTime == "" {
			continue
		}
		line := fmt.Sprintf("%s: %s", entry.Nickname, entry.StartTime)
		byDay[entry.DayOfWeek] = append(byDay[entry.DayOfWeek], line)
	}

	var sb strings.Builder
	sb.WriteString("📅 Стандартное расписание на неделю:\n\n")

	for day := 0; day < totalDaysInWeek; day++ {
		sb.WriteString(WeekdayName(day))
		sb.WriteString(":\n")
		if len(byDay[day]) == 0 {
			sb.WriteString("  • " + NoInfoPlaceholder + "\n")
		} else {
			for _, line := range byDay[day] {
				sb.WriteString("  • " + line + "\n")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatDailySummary строит текст сводки за день: одна строка на ответ
// в порядке поступления, своё время в скобках для статуса «Готов»
func FormatDailySummary(rows []model.ResponseRow) string {
	if len(rows) == 0 {
		return NoResponsesText
	}

	var sb strings.Builder
	sb.WriteString("📊 Сводка за сегодня:\n\n")

	for _, row := range rows {
		display := GetStatusDisplay(row.Status)
		respondedAt := FormatTime(row.RespondedAt)
		if row.CustomTime != "" {
			sb.WriteString(fmt.Sprintf("• %s: %s %s (%s) в %s\n",
				row.Nickname, display.Emoji, display.Text, row.CustomTime, respondedAt))
		} else {
			sb.WriteString(fmt.Sprintf("• %s: %s %s в %s\n",
				row.Nickname, display.Emoji, display.Text, respondedAt))
		}
	}

	return sb.String()
}
