package model

// ScheduleEntry строка недельного расписания: во сколько игрок
// обычно готов начинать в данный день недели
type ScheduleEntry struct {
	Nickname  string `json:"nickname"`
	DayOfWeek int    `json:"day_of_week"` // 0 = понедельник, 6 = воскресенье
	StartTime string `json:"start_time"`  // "ЧЧ:ММ"
}
