package model

import "time"

// ResponseStatus ответ на ежедневный вопрос о готовности.
// Хранится в БД как есть, в том же виде показывается в сводке.
type ResponseStatus string

const (
	StatusReady            ResponseStatus = "Готов"
	StatusProbablyReady    ResponseStatus = "Скорее готов"
	StatusProbablyNotReady ResponseStatus = "Скорее не готов"
	StatusNotReady         ResponseStatus = "Не готов"
)

// DailyResponse ответ пользователя за конкретную дату.
// Ключ (user_id, response_date): повторный ответ за день затирает прежний.
type DailyResponse struct {
	UserID       int64          `json:"user_id"`
	ResponseDate time.Time      `json:"response_date"`
	Status       ResponseStatus `json:"status"`
	CustomTime   string         `json:"custom_time"` // заполнено только для статуса «Готов»
	RespondedAt  time.Time      `json:"responded_at"`
}

// ResponseRow строка дневной сводки: ответ вместе с ником ответившего
type ResponseRow struct {
	Nickname    string         `json:"nickname"`
	Status      ResponseStatus `json:"status"`
	CustomTime  string         `json:"custom_time"`
	RespondedAt time.Time      `json:"responded_at"`
}
