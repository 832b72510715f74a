package notifier

import (
	"context"
	"time"

	"github.com/dkhalov/planner_bot/internal/controller/formatting"
	"github.com/dkhalov/planner_bot/internal/controller/keyboard"
	"github.com/dkhalov/planner_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Таймаут на отправку одному получателю: зависший получатель
// не должен блокировать остальных
const sendTimeout = 5 * time.Second

// QuestionText текст ежедневного вопроса о готовности
const QuestionText = "🕔 Ежедневный вопрос\n\nГотов сегодня играть?"

// Sender минимальный интерфейс отправки сообщений. Его реализует *bot.Bot.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// UserDirectory доступ к списку пользователей
type UserDirectory interface {
	ListIDs(ctx context.Context) ([]int64, error)
	GetByID(ctx context.Context, telegramID int64) (*model.User, error)
}

// ResponseSource доступ к ответам за сегодня
type ResponseSource interface {
	TodayResponses(ctx context.Context) ([]model.ResponseRow, error)
}

// Notifier рассылает ежедневный вопрос и сводку.
// Ошибка доставки одному получателю логируется и не прерывает рассылку.
type Notifier struct {
	sender    Sender
	users     UserDirectory
	responses ResponseSource
	logger    *zap.Logger
}

func New(sender Sender, users UserDirectory, responses ResponseSource, logger *zap.Logger) *Notifier {
	return &Notifier{
		sender:    sender,
		users:     users,
		responses: responses,
		logger:    logger,
	}
}

// AskReadiness отправляет одному пользователю вопрос о готовности
// с четырьмя вариантами ответа. Ошибка доставки логируется и наружу
// не отдаётся.
func (n *Notifier) AskReadiness(ctx context.Context, chatID int64) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, err := n.sender.SendMessage(sendCtx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        QuestionText,
		ReplyMarkup: keyboard.DailyQuestion(),
	})
	if err != nil {
		n.logger.Error("Failed to send daily question",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return
	}

	n.logger.Info("Daily question sent", zap.Int64("chat_id", chatID))
}

// BroadcastQuestion отправляет ежедневный вопрос всем известным пользователям
func (n *Notifier) BroadcastQuestion(ctx context.Context) {
	runID := uuid.NewString()

	ids, err := n.users.ListIDs(ctx)
	if err != nil {
		n.logger.Error("Failed to list users for question broadcast",
			zap.String("run_id", runID),
			zap.Error(err),
		)
		return
	}

	n.logger.Info("Question broadcast started",
		zap.String("run_id", runID),
		zap.Int("users", len(ids)),
	)

	for _, id := range ids {
		n.AskReadiness(ctx, id)
	}

	n.logger.Info("Question broadcast finished", zap.String("run_id", runID))
}

// BroadcastSummary строит сводку за сегодня и рассылает её.
// Получатели выбираются по нику: сводку получает пользователь, чей ник
// есть среди сегодняшних ответов со статусом, отличным от «Не готов».
// Ники считаются уникальными; при совпадении сводка уйдёт обоим.
func (n *Notifier) BroadcastSummary(ctx context.Context) {
	runID := uuid.NewString()

	rows, err := n.responses.TodayResponses(ctx)
	if err != nil {
		n.logger.Error("Failed to load today responses",
			zap.String("run_id", runID),
			zap.Error(err),
		)
		return
	}

	summary := formatting.FormatDailySummary(rows)

	statusByNick := make(map[string]model.ResponseStatus, len(rows))
	for _, row := range rows {
		statusByNick[row.Nickname] = row.Status
	}

	ids, err := n.users.ListIDs(ctx)
	if err != nil {
		n.logger.Error("Failed to list users for summary broadcast",
			zap.String("run_id", runID),
			zap.Error(err),
		)
		return
	}

	n.logger.Info("Summary broadcast started",
		zap.String("run_id", runID),
		zap.Int("responses", len(rows)),
		zap.Int("users", len(ids)),
	)

	sent := 0
	for _, id := range ids {
		user, err := n.users.GetByID(ctx, id)
		if err != nil {
			n.logger.Error("Failed to get summary recipient",
				zap.String("run_id", runID),
				zap.Int64("chat_id", id),
				zap.Error(err),
			)
			continue
		}
		if user == nil {
			continue
		}

		status, responded := statusByNick[user.Nickname]
		if !responded || status == model.StatusNotReady {
			continue
		}

		if n.sendSummary(ctx, id, summary) {
			sent++
		}
	}

	n.logger.Info("Summary broadcast finished",
		zap.String("run_id", runID),
		zap.Int("sent", sent),
	)
}

func (n *Notifier) sendSummary(ctx context.Context, chatID int64, text string) bool {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, err := n.sender.SendMessage(sendCtx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: keyboard.BackToSchedule(),
	})
	if err != nil {
		n.logger.Error("Failed to send summary",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return false
	}

	n.logger.Info("Summary sent", zap.Int64("chat_id", chatID))
	return true
}
