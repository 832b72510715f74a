package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dkhalov/planner_bot/internal/timeutil"
	"go.uber.org/zap"
)

func TestScheduleService_SetDayTime(t *testing.T) {
	store := newMockScheduleStore()
	svc := NewScheduleService(store, zap.NewNop())

	if err := svc.SetDayTime(context.Background(), 1, 0, "09:00"); err != nil {
		t.Fatalf("SetDayTime: %v", err)
	}

	got, _ := svc.DayTime(context.Background(), 1, 0)
	if got != "09:00" {
		t.Fatalf("DayTime = %q, want 09:00", got)
	}
}

func TestScheduleService_SetDayTime_UpsertLastWins(t *testing.T) {
	store := newMockScheduleStore()
	svc := NewScheduleService(store, zap.NewNop())

	_ = svc.SetDayTime(context.Background(), 1, 0, "09:00")
	_ = svc.SetDayTime(context.Background(), 1, 0, "19:30")

	if len(store.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(store.entries))
	}
	got, _ := svc.DayTime(context.Background(), 1, 0)
	if got != "19:30" {
		t.Fatalf("DayTime = %q, want 19:30", got)
	}
}

func TestScheduleService_SetDayTime_InvalidTime(t *testing.T) {
	store := newMockScheduleStore()
	svc := NewScheduleService(store, zap.NewNop())

	for _, bad := range []string{"9:00", "24:00", "abc", ""} {
		err := svc.SetDayTime(context.Background(), 1, 0, bad)
		if !errors.Is(err, timeutil.ErrInvalidTime) {
			t.Errorf("SetDayTime(%q) = %v, want ErrInvalidTime", bad, err)
		}
	}

	// Хранилище не тронуто
	if len(store.entries) != 0 {
		t.Fatalf("invalid input must not reach the store, got %v", store.entries)
	}
}

func TestScheduleService_SetDayTime_DayOutOfRange(t *testing.T) {
	store := newMockScheduleStore()
	svc := NewScheduleService(store, zap.NewNop())

	for _, day := range []int{-1, 7} {
		if err := svc.SetDayTime(context.Background(), 1, day, "09:00"); err == nil {
			t.Errorf("SetDayTime(day=%d) = nil, want error", day)
		}
	}
	if len(store.entries) != 0 {
		t.Fatal("out of range day must not reach the store")
	}
}

func TestScheduleService_SetDayTime_StorageErrorSurfaces(t *testing.T) {
	store := newMockScheduleStore()
	store.err = errors.New("connection refused")
	svc := NewScheduleService(store, zap.NewNop())

	if err := svc.SetDayTime(context.Background(), 1, 0, "09:00"); err == nil {
		t.Fatal("storage error must surface to the caller")
	}
}

func TestScheduleService_DayTime_Absent(t *testing.T) {
	svc := NewScheduleService(newMockScheduleStore(), zap.NewNop())

	got, err := svc.DayTime(context.Background(), 1, 4)
	if err != nil || got != "" {
		t.Fatalf("DayTime = (%q, %v), want empty", got, err)
	}
}
