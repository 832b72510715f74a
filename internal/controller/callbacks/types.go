package callbacks

import (
	"github.com/dkhalov/planner_bot/internal/controller/notifier"
	"github.com/dkhalov/planner_bot/internal/controller/state"
	"github.com/dkhalov/planner_bot/internal/service"
	"go.uber.org/zap"
)

// Handler содержит зависимости обработчиков callback query
type Handler struct {
	userService     *service.UserService
	scheduleService *service.ScheduleService
	responseService *service.ResponseService
	notifier        *notifier.Notifier
	stateManager    *state.Manager
	logger          *zap.Logger
}

// NewHandler создаёт обработчик callback query
func NewHandler(
	userService *service.UserService,
	scheduleService *service.ScheduleService,
	responseService *service.ResponseService,
	notif *notifier.Notifier,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		userService:     userService,
		scheduleService: scheduleService,
		responseService: responseService,
		notifier:        notif,
		stateManager:    stateManager,
		logger:          logger,
	}
}
