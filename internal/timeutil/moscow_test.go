package timeutil

import (
	"testing"
	"time"
)

func TestValidateHHMM_Valid(t *testing.T) {
	valid := []string{"00:00", "09:05", "19:30", "23:59", "10:00"}
	for _, s := range valid {
		if err := ValidateHHMM(s); err != nil {
			t.Errorf("ValidateHHMM(%q) = %v, want nil", s, err)
		}
	}
}

func TestValidateHHMM_Invalid(t *testing.T) {
	invalid := []string{
		"", "9:05", "24:00", "12:60", "12:5", "1230",
		"12-30", "ab:cd", "12:30 ", " 12:30", "12:30:00", "-1:00",
	}
	for _, s := range invalid {
		if err := ValidateHHMM(s); err == nil {
			t.Errorf("ValidateHHMM(%q) = nil, want error", s)
		}
	}
}

func TestMoscowOffset(t *testing.T) {
	utc := time.Date(2024, time.March, 10, 21, 30, 0, 0, time.UTC)
	msk := utc.In(Moscow)
	if msk.Hour() != 0 || msk.Day() != 11 {
		t.Fatalf("21:30 UTC must be 00:30 next day MSK, got %v", msk)
	}
}

func TestNextDaily_BeforeTrigger(t *testing.T) {
	// 17:59 МСК, триггер 18:00 — ждём одну минуту
	now := time.Date(2024, time.March, 10, 17, 59, 0, 0, Moscow)
	next := NextDaily(now, 18, 0)
	want := time.Date(2024, time.March, 10, 18, 0, 0, 0, Moscow)
	if !next.Equal(want) {
		t.Fatalf("NextDaily = %v, want %v", next, want)
	}
}

func TestNextDaily_AfterTrigger(t *testing.T) {
	// 18:00:00 уже наступило — следующее срабатывание завтра
	now := time.Date(2024, time.March, 10, 18, 0, 0, 0, Moscow)
	next := NextDaily(now, 18, 0)
	want := time.Date(2024, time.March, 11, 18, 0, 0, 0, Moscow)
	if !next.Equal(want) {
		t.Fatalf("NextDaily = %v, want %v", next, want)
	}
}

func TestNextDaily_UTCInput(t *testing.T) {
	// Вход в UTC: 16:00 UTC = 19:00 МСК, значит 18:00 МСК уже прошло
	now := time.Date(2024, time.March, 10, 16, 0, 0, 0, time.UTC)
	next := NextDaily(now, 18, 0)
	want := time.Date(2024, time.March, 11, 18, 0, 0, 0, Moscow)
	if !next.Equal(want) {
		t.Fatalf("NextDaily = %v, want %v", next, want)
	}
}

func TestToday_Midnight(t *testing.T) {
	today := Today()
	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Fatalf("Today must be midnight, got %v", today)
	}
	if today.Location() != Moscow {
		t.Fatalf("Today must be in MSK, got %v", today.Location())
	}
}
