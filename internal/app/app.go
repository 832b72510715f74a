package app

import (
	"context"
	"fmt"

	"github.com/dkhalov/planner_bot/internal/config"
	"github.com/dkhalov/planner_bot/internal/controller"
	"github.com/dkhalov/planner_bot/internal/controller/notifier"
	"github.com/dkhalov/planner_bot/internal/repository"
	"github.com/dkhalov/planner_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App собирает все зависимости бота
type App struct {
	pool       *pgxpool.Pool
	controller *controller.BotController
	scheduler  *Scheduler
	logger     *zap.Logger
}

// New создаёт приложение: подключается к БД, применяет миграции
// и связывает репозитории, сервисы и контроллер
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	migrator, err := NewMigrator(pool, cfg.MigrationsDir)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	logger.Info("Migrations applied")

	userRepo := repository.NewUserRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)
	responseRepo := repository.NewResponseRepository(pool)

	userService := service.NewUserService(userRepo, logger)
	scheduleService := service.NewScheduleService(scheduleRepo, logger)
	responseService := service.NewResponseService(responseRepo, logger)

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("create bot: %w", err)
	}

	notif := notifier.New(b, userService, responseService, logger)

	botController := controller.NewBotController(
		b,
		userService,
		scheduleService,
		responseService,
		notif,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("register handlers: %w", err)
	}

	return &App{
		pool:       pool,
		controller: botController,
		scheduler:  NewScheduler(notif, logger),
		logger:     logger,
	}, nil
}

// Run запускает планировщик и long polling; блокируется до отмены контекста
func (a *App) Run(ctx context.Context) {
	a.scheduler.Start(ctx)
	a.controller.Start(ctx)
}

// Shutdown останавливает фоновые задачи и освобождает ресурсы
func (a *App) Shutdown() {
	a.logger.Info("Shutting down")
	a.scheduler.Stop()
	a.pool.Close()
	_ = a.logger.Sync()
}
