package timeutil

import (
	"errors"
	"regexp"
	"time"
)

// Moscow фиксированное смещение UTC+3 без перехода на летнее время.
// Бот считает "сегодня" и время срабатывания задач именно в этой зоне,
// а не в локальной зоне хоста.
var Moscow = time.FixedZone("MSK", 3*60*60)

// ErrInvalidTime возвращается при времени не в формате ЧЧ:ММ
var ErrInvalidTime = errors.New("invalid time format, expected HH:MM")

// hhmmPattern строгий формат: часы с ведущим нулём, 24-часовая запись
var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// Now возвращает текущее московское время
func Now() time.Time {
	return time.Now().In(Moscow)
}

// Today возвращает полночь текущей московской даты
func Today() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, Moscow)
}

// ValidateHHMM проверяет что строка это время вида "09:05" или "19:30".
// Строка не нормализуется: принимается только каноническая запись,
// поэтому валидное значение можно сохранять как есть.
func ValidateHHMM(s string) error {
	if !hhmmPattern.MatchString(s) {
		return ErrInvalidTime
	}
	return nil
}

// NextDaily возвращает ближайший будущий момент, когда московские часы
// покажут hour:minute. Пропущенные срабатывания не навёрстываются:
// расчёт всегда идёт от текущего момента вперёд.
func NextDaily(now time.Time, hour, minute int) time.Time {
	local := now.In(Moscow)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, Moscow)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
