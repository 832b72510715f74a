package callbacks

import (
	"context"
	"fmt"

	"github.com/dkhalov/planner_bot/internal/controller/formatting"
	"github.com/dkhalov/planner_bot/internal/controller/keyboard"
	"github.com/dkhalov/planner_bot/internal/controller/notifier"
	"github.com/dkhalov/planner_bot/internal/controller/state"
	"github.com/dkhalov/planner_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

var statusByAction = map[string]model.ResponseStatus{
	ProbablyReady:    model.StatusProbablyReady,
	ProbablyNotReady: model.StatusProbablyNotReady,
	NotReady:         model.StatusNotReady,
}

// handleReadiness обрабатывает ответ на ежедневный вопрос.
// «Готов» требует ввести своё время; остальные статусы сохраняются сразу.
func (h *Handler) handleReadiness(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	telegramID := callback.From.ID

	if callback.Data == Ready {
		h.stateManager.SetState(telegramID, state.StateAwaitingCustomTime)
		h.editMessage(ctx, b, callback, "Введи удобное время в формате ЧЧ:ММ:", keyboard.Back(DailyQuestion))
		AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	status, ok := statusByAction[callback.Data]
	if !ok {
		h.logger.Error("Unknown readiness action", zap.String("data", callback.Data))
		AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	if err := h.responseService.SaveStatus(ctx, telegramID, status); err != nil {
		h.logger.Error("Failed to save daily response",
			zap.Int64("telegram_id", telegramID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		AnswerCallbackAlert(ctx, b, callback.ID, "❌ Произошла ошибка. Попробуйте позже.")
		return
	}

	display := formatting.GetStatusDisplay(status)
	h.editMessage(ctx, b, callback,
		fmt.Sprintf("Ваш ответ: %s %s", display.Emoji, display.Text),
		keyboard.BackToSchedule(),
	)
	AnswerCallback(ctx, b, callback.ID, "")
}

// handleDailyQuestion показывает ежедневный вопрос заново
// (цель кнопки «Назад» на экране ввода своего времени)
func (h *Handler) handleDailyQuestion(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	telegramID := callback.From.ID
	h.stateManager.Clear(telegramID)

	h.editMessage(ctx, b, callback, notifier.QuestionText, keyboard.DailyQuestion())
	AnswerCallback(ctx, b, callback.ID, "")
}
