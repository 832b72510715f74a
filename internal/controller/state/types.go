package state

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Ожидание свободного текста после нажатия кнопки
	StateAwaitingNickname     UserState = "awaiting_nickname"      // новый ник
	StateAwaitingScheduleTime UserState = "awaiting_schedule_time" // время для дня недели
	StateAwaitingCustomTime   UserState = "awaiting_custom_time"   // своё время после «Готов»
)

// userData хранит состояние диалога одного пользователя.
// Единственные данные диалога — день недели, поэтому он лежит
// типизированным полем, а не в общей карте.
type userData struct {
	state UserState
	day   int // только для StateAwaitingScheduleTime
}
