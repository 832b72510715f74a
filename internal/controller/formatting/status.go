package formatting

import "github.com/dkhalov/planner_bot/internal/model"

// StatusDisplay содержит emoji и текст для отображения статуса готовности
type StatusDisplay struct {
	Emoji string
	Text  string
}

// GetStatusDisplay возвращает emoji и текст для статуса ответа
func GetStatusDisplay(status model.ResponseStatus) StatusDisplay {
	switch status {
	case model.StatusReady:
		return StatusDisplay{Emoji: "✅", Text: string(model.StatusReady)}
	case model.StatusProbablyReady:
		return StatusDisplay{Emoji: "🟢", Text: string(model.StatusProbablyReady)}
	case model.StatusProbablyNotReady:
		return StatusDisplay{Emoji: "🟠", Text: string(model.StatusProbablyNotReady)}
	case model.StatusNotReady:
		return StatusDisplay{Emoji: "❌", Text: string(model.StatusNotReady)}
	default:
		return StatusDisplay{Emoji: "❓", Text: string(status)}
	}
}
