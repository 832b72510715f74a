package handlers

import (
	"context"

	"github.com/dkhalov/planner_bot/internal/controller/formatting"
	"github.com/dkhalov/planner_bot/internal/controller/keyboard"
	"github.com/dkhalov/planner_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start: регистрирует пользователя
// и показывает недельный обзор
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := update.Message.From

	if _, err := h.userService.Register(ctx, user.ID, user.Username); err != nil {
		h.logger.Error("Failed to register user",
			zap.Int64("telegram_id", user.ID),
			zap.Error(err),
		)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка при регистрации. Попробуйте позже.")
		return
	}

	entries, err := h.scheduleService.WeeklyEntries(ctx)
	if err != nil {
		h.logger.Error("Failed to load weekly entries", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка. Попробуйте позже.")
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		formatting.FormatWeeklySchedule(entries),
		keyboard.Schedule(),
	)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Справка:\n\n" +
		"/start - Показать расписание на неделю\n" +
		"/cancel - Отменить текущий ввод\n" +
		"/help - Показать эту справку\n\n" +
		"Каждый день в 18:00 МСК бот спрашивает, готов ли ты играть, " +
		"а в 20:00 МСК присылает сводку ответов.\n\n" +
		"Время вводится в формате ЧЧ:ММ, например 19:30."

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID

	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Нет активных операций для отмены.", nil)
		return
	}

	h.stateManager.Clear(telegramID)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"✅ Операция отменена.",
		keyboard.BackToSchedule(),
	)
}
