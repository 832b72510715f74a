package callbacks

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dkhalov/planner_bot/internal/controller/formatting"
	"github.com/dkhalov/planner_bot/internal/controller/keyboard"
	"github.com/dkhalov/planner_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleShowSchedule показывает недельный обзор. Работает и как «Назад»:
// сбрасывает незавершённый диалог пользователя.
func (h *Handler) handleShowSchedule(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	telegramID := callback.From.ID
	h.stateManager.Clear(telegramID)

	entries, err := h.scheduleService.WeeklyEntries(ctx)
	if err != nil {
		h.logger.Error("Failed to load weekly entries", zap.Error(err))
		AnswerCallbackAlert(ctx, b, callback.ID, "❌ Произошла ошибка. Попробуйте позже.")
		return
	}

	h.editMessage(ctx, b, callback, formatting.FormatWeeklySchedule(entries), keyboard.Schedule())
	AnswerCallback(ctx, b, callback.ID, "")
}

// handleChangeNick запрашивает новый ник свободным текстом
func (h *Handler) handleChangeNick(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	telegramID := callback.From.ID
	h.stateManager.SetState(telegramID, state.StateAwaitingNickname)

	h.editMessage(ctx, b, callback, "Введите новый никнейм:", keyboard.Back(ShowSchedule))
	AnswerCallback(ctx, b, callback.ID, "")
}

// handleSetTime запрашивает время для выбранного дня недели
func (h *Handler) handleSetTime(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	telegramID := callback.From.ID

	day, err := strconv.Atoi(strings.TrimPrefix(callback.Data, SetTimePrefix))
	if err != nil || day < 0 || day > 6 {
		h.logger.Error("Invalid set_time callback", zap.String("data", callback.Data))
		AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	text := fmt.Sprintf("Введи время для %s в формате ЧЧ:ММ (например, 19:30):", formatting.WeekdayName(day))

	current, err := h.scheduleService.DayTime(ctx, telegramID, day)
	if err != nil {
		h.logger.Error("Failed to get current day time",
			zap.Int64("telegram_id", telegramID),
			zap.Int("day", day),
			zap.Error(err),
		)
	} else if current != "" {
		text += fmt.Sprintf("\n\nСейчас: %s", current)
	}

	h.stateManager.AwaitScheduleTime(telegramID, day)

	h.editMessage(ctx, b, callback, text, keyboard.Back(ShowSchedule))
	AnswerCallback(ctx, b, callback.ID, "")
}
