package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dkhalov/planner_bot/internal/controller/formatting"
	"github.com/dkhalov/planner_bot/internal/controller/keyboard"
	"github.com/dkhalov/planner_bot/internal/controller/state"
	"github.com/dkhalov/planner_bot/internal/timeutil"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const invalidTimeText = "Неверный формат времени. Используйте ЧЧ:ММ (например, 19:30)"

// HandleTextMessage обрабатывает свободный текст в зависимости от
// состояния диалога пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются своими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	// Текст вне диалога игнорируется
	if currentState == state.StateNone {
		return
	}

	h.logger.Info("Handling dialog text",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)),
	)

	switch currentState {
	case state.StateAwaitingNickname:
		h.handleNicknameInput(ctx, b, update)
	case state.StateAwaitingScheduleTime:
		h.handleScheduleTimeInput(ctx, b, update)
	case state.StateAwaitingCustomTime:
		h.handleCustomTimeInput(ctx, b, update)
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}

// handleNicknameInput сохраняет новый ник. Любой непустой текст принимается.
func (h *Handlers) handleNicknameInput(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	nickname := strings.TrimSpace(update.Message.Text)

	if err := h.userService.Rename(ctx, telegramID, nickname); err != nil {
		h.logger.Error("Failed to rename user",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err),
		)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка. Попробуйте позже.")
		return
	}

	h.stateManager.Clear(telegramID)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		fmt.Sprintf("Никнейм изменен на: %s", nickname),
		keyboard.BackToSchedule(),
	)
}

// handleScheduleTimeInput сохраняет время для дня недели.
// При неверном формате состояние сохраняется и пользователь
// может сразу ввести время заново.
func (h *Handlers) handleScheduleTimeInput(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	timeText := strings.TrimSpace(update.Message.Text)

	day, ok := h.stateManager.Day(telegramID)
	if !ok {
		h.logger.Error("Awaiting schedule time without day", zap.Int64("telegram_id", telegramID))
		h.stateManager.Clear(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка. Начните заново через /start")
		return
	}

	err := h.scheduleService.SetDayTime(ctx, telegramID, day, timeText)
	if errors.Is(err, timeutil.ErrInvalidTime) {
		h.sendError(ctx, b, update.Message.Chat.ID, invalidTimeText)
		return
	}
	if err != nil {
		h.logger.Error("Failed to set day time",
			zap.Int64("telegram_id", telegramID),
			zap.Int("day", day),
			zap.Error(err),
		)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка. Попробуйте позже.")
		return
	}

	h.stateManager.Clear(telegramID)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		fmt.Sprintf("Время для %s установлено: %s", formatting.WeekdayName(day), timeText),
		keyboard.BackToSchedule(),
	)
}

// handleCustomTimeInput сохраняет ответ «Готов» со своим временем
func (h *Handlers) handleCustomTimeInput(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	timeText := strings.TrimSpace(update.Message.Text)

	err := h.responseService.SaveReady(ctx, telegramID, timeText)
	if errors.Is(err, timeutil.ErrInvalidTime) {
		h.sendError(ctx, b, update.Message.Chat.ID, invalidTimeText)
		return
	}
	if err != nil {
		h.logger.Error("Failed to save ready response",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err),
		)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка. Попробуйте позже.")
		return
	}

	h.stateManager.Clear(telegramID)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		fmt.Sprintf("Заметано. Записал время: %s", timeText),
		keyboard.BackToSchedule(),
	)
}
