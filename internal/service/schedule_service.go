package service

import (
	"context"
	"fmt"

	"github.com/dkhalov/planner_bot/internal/model"
	"github.com/dkhalov/planner_bot/internal/timeutil"
	"go.uber.org/zap"
)

// ScheduleStore операции хранилища недельного расписания
type ScheduleStore interface {
	SetEntry(ctx context.Context, userID int64, dayOfWeek int, startTime string) error
	GetEntry(ctx context.Context, userID int64, dayOfWeek int) (string, error)
	ListAll(ctx context.Context) ([]model.ScheduleEntry, error)
}

type ScheduleService struct {
	schedule ScheduleStore
	logger   *zap.Logger
}

func NewScheduleService(schedule ScheduleStore, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		schedule: schedule,
		logger:   logger,
	}
}

// SetDayTime сохраняет время начала для дня недели (0 = понедельник).
// Время валидируется до записи: при ошибке формата хранилище не трогается.
func (s *ScheduleService) SetDayTime(ctx context.Context, userID int64, dayOfWeek int, startTime string) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return fmt.Errorf("day of week out of range: %d", dayOfWeek)
	}
	if err := timeutil.ValidateHHMM(startTime); err != nil {
		return err
	}

	if err := s.schedule.SetEntry(ctx, userID, dayOfWeek, startTime); err != nil {
		return fmt.Errorf("set day time: %w", err)
	}

	s.logger.Info("Schedule entry updated",
		zap.Int64("telegram_id", userID),
		zap.Int("day_of_week", dayOfWeek),
		zap.String("start_time", startTime),
	)

	return nil
}

// DayTime возвращает сохранённое время для дня недели,
// пустую строку если записи нет
func (s *ScheduleService) DayTime(ctx context.Context, userID int64, dayOfWeek int) (string, error) {
	return s.schedule.GetEntry(ctx, userID, dayOfWeek)
}

// WeeklyEntries возвращает записи всех пользователей для недельного обзора
func (s *ScheduleService) WeeklyEntries(ctx context.Context) ([]model.ScheduleEntry, error) {
	return s.schedule.ListAll(ctx)
}
