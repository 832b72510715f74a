package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dkhalov/planner_bot/internal/model"
	"github.com/dkhalov/planner_bot/internal/timeutil"
	"go.uber.org/zap"
)

// ResponseStore операции хранилища ежедневных ответов
type ResponseStore interface {
	Save(ctx context.Context, resp *model.DailyResponse) error
	ListByDate(ctx context.Context, date time.Time) ([]model.ResponseRow, error)
}

type ResponseService struct {
	responses ResponseStore
	logger    *zap.Logger
}

func NewResponseService(responses ResponseStore, logger *zap.Logger) *ResponseService {
	return &ResponseService{
		responses: responses,
		logger:    logger,
	}
}

// SaveStatus сохраняет ответ без своего времени
// (Скорее готов / Скорее не готов / Не готов) за московское "сегодня"
func (s *ResponseService) SaveStatus(ctx context.Context, userID int64, status model.ResponseStatus) error {
	return s.save(ctx, userID, status, "")
}

// SaveReady сохраняет ответ «Готов» с удобным временем.
// Время валидируется до записи.
func (s *ResponseService) SaveReady(ctx context.Context, userID int64, customTime string) error {
	if err := timeutil.ValidateHHMM(customTime); err != nil {
		return err
	}
	return s.save(ctx, userID, model.StatusReady, customTime)
}

func (s *ResponseService) save(ctx context.Context, userID int64, status model.ResponseStatus, customTime string) error {
	resp := &model.DailyResponse{
		UserID:       userID,
		ResponseDate: timeutil.Today(),
		Status:       status,
		CustomTime:   customTime,
		RespondedAt:  timeutil.Now(),
	}

	if err := s.responses.Save(ctx, resp); err != nil {
		return fmt.Errorf("save response: %w", err)
	}

	s.logger.Info("Daily response saved",
		zap.Int64("telegram_id", userID),
		zap.String("status", string(status)),
		zap.String("custom_time", customTime),
	)

	return nil
}

// TodayResponses возвращает все ответы за московское "сегодня"
// в порядке поступления
func (s *ResponseService) TodayResponses(ctx context.Context) ([]model.ResponseRow, error) {
	return s.responses.ListByDate(ctx, timeutil.Today())
}
