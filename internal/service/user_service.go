package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dkhalov/planner_bot/internal/model"
	"go.uber.org/zap"
)

// UserStore операции хранилища, нужные сервису пользователей
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateNickname(ctx context.Context, id int64, nickname string) error
	ListIDs(ctx context.Context) ([]int64, error)
}

type UserService struct {
	users  UserStore
	logger *zap.Logger
}

func NewUserService(users UserStore, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// Register регистрирует пользователя при первом обращении.
// Ник по умолчанию — username, а если его нет, то "User_<id>".
// Повторный вызов для существующего пользователя ничего не меняет.
func (s *UserService) Register(ctx context.Context, telegramID int64, username string) (*model.User, error) {
	existing, err := s.users.GetByID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	nickname := username
	if nickname == "" {
		nickname = fmt.Sprintf("User_%d", telegramID)
	}

	user := &model.User{
		ID:       telegramID,
		Username: username,
		Nickname: nickname,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("New user registered",
		zap.Int64("telegram_id", telegramID),
		zap.String("nickname", nickname),
	)

	return user, nil
}

// Rename меняет ник пользователя. Единственное требование к нику —
// непустая строка, любой текст принимается как есть.
func (s *UserService) Rename(ctx context.Context, telegramID int64, nickname string) error {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return fmt.Errorf("empty nickname")
	}

	if err := s.users.UpdateNickname(ctx, telegramID, nickname); err != nil {
		return fmt.Errorf("rename user: %w", err)
	}

	s.logger.Info("Nickname changed",
		zap.Int64("telegram_id", telegramID),
		zap.String("nickname", nickname),
	)

	return nil
}

// GetByID получает пользователя по Telegram ID
func (s *UserService) GetByID(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.users.GetByID(ctx, telegramID)
}

// ListIDs возвращает ID всех известных пользователей
func (s *UserService) ListIDs(ctx context.Context) ([]int64, error) {
	return s.users.ListIDs(ctx)
}
