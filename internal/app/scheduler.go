package app

import (
	"context"
	"time"

	"github.com/dkhalov/planner_bot/internal/timeutil"
	"go.uber.org/zap"
)

// Время срабатывания ежедневных задач, московские часы
const (
	questionHour = 18
	summaryHour  = 20
)

// Broadcaster рассылки, запускаемые по расписанию
type Broadcaster interface {
	BroadcastQuestion(ctx context.Context)
	BroadcastSummary(ctx context.Context)
}

// Scheduler запускает две ежедневные задачи: вопрос о готовности в 18:00 МСК
// и сводку ответов в 20:00 МСК. Таймер всегда взводится на ближайшее будущее
// срабатывание, поэтому пропущенное время (процесс лежал) не навёрстывается.
type Scheduler struct {
	notifier Broadcaster
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(notifier Broadcaster, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		notifier: notifier,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting daily scheduler")

	go s.runDailyJob(ctx, "daily_question", questionHour, 0, s.notifier.BroadcastQuestion)
	go s.runDailyJob(ctx, "daily_summary", summaryHour, 0, s.notifier.BroadcastSummary)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping daily scheduler")
	close(s.stopChan)
}

// runDailyJob ждёт ближайшего срабатывания hour:minute по Москве,
// выполняет задачу и взводит таймер заново
func (s *Scheduler) runDailyJob(ctx context.Context, name string, hour, minute int, job func(context.Context)) {
	for {
		next := timeutil.NextDaily(timeutil.Now(), hour, minute)
		timer := time.NewTimer(time.Until(next))

		s.logger.Info("Daily job armed",
			zap.String("job", name),
			zap.Time("next_fire", next),
		)

		select {
		case <-timer.C:
			s.logger.Info("Daily job fired", zap.String("job", name))
			job(ctx)
		case <-s.stopChan:
			timer.Stop()
			s.logger.Info("Daily job stopped", zap.String("job", name))
			return
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Daily job cancelled", zap.String("job", name))
			return
		}
	}
}
