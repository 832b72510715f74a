package callbacks

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Callback Data
// ========================
// Эти идентификаторы — контракт между клавиатурами и роутером

const (
	ShowSchedule  = "show_schedule" // недельный обзор, он же «Назад»
	ChangeNick    = "change_nick"
	SetTimePrefix = "set_time_" // set_time_0 .. set_time_6
	DailyQuestion = "daily_question"

	Ready            = "ready"
	ProbablyReady    = "probably_ready"
	ProbablyNotReady = "probably_not_ready"
	NotReady         = "not_ready"
)

// HandleCallbackQuery распределяет нажатия кнопок по обработчикам
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	data := callback.Data

	h.logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("telegram_id", callback.From.ID),
	)

	switch {
	case data == ShowSchedule:
		h.handleShowSchedule(ctx, b, callback)
	case data == ChangeNick:
		h.handleChangeNick(ctx, b, callback)
	case strings.HasPrefix(data, SetTimePrefix):
		h.handleSetTime(ctx, b, callback)
	case data == Ready, data == ProbablyReady, data == ProbablyNotReady, data == NotReady:
		h.handleReadiness(ctx, b, callback)
	case data == DailyQuestion:
		h.handleDailyQuestion(ctx, b, callback)
	default:
		h.logger.Warn("Unknown callback data", zap.String("data", data))
		AnswerCallback(ctx, b, callback.ID, "")
	}
}
