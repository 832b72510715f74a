package handlers

import (
	"github.com/dkhalov/planner_bot/internal/controller/state"
	"github.com/dkhalov/planner_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд и текста
type Handlers struct {
	userService     *service.UserService
	scheduleService *service.ScheduleService
	responseService *service.ResponseService
	stateManager    *state.Manager
	logger          *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	userService *service.UserService,
	scheduleService *service.ScheduleService,
	responseService *service.ResponseService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:     userService,
		scheduleService: scheduleService,
		responseService: responseService,
		stateManager:    stateManager,
		logger:          logger,
	}
}
