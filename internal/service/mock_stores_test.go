package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dkhalov/planner_bot/internal/model"
)

// ── моки хранилищ ──

type mockUserStore struct {
	users map[int64]*model.User
	err   error
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[int64]*model.User)}
}

func (m *mockUserStore) Create(_ context.Context, user *model.User) error {
	if m.err != nil {
		return m.err
	}
	if _, exists := m.users[user.ID]; exists {
		return nil // upsert: существующий пользователь не меняется
	}
	clone := *user
	clone.CreatedAt = time.Now()
	m.users[user.ID] = &clone
	return nil
}

func (m *mockUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[id], nil
}

func (m *mockUserStore) UpdateNickname(_ context.Context, id int64, nickname string) error {
	if m.err != nil {
		return m.err
	}
	user, exists := m.users[id]
	if !exists {
		return fmt.Errorf("user not found")
	}
	user.Nickname = nickname
	return nil
}

func (m *mockUserStore) ListIDs(_ context.Context) ([]int64, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]int64, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	return ids, nil
}

type scheduleKey struct {
	userID int64
	day    int
}

type mockScheduleStore struct {
	entries map[scheduleKey]string
	err     error
}

func newMockScheduleStore() *mockScheduleStore {
	return &mockScheduleStore{entries: make(map[scheduleKey]string)}
}

func (m *mockScheduleStore) SetEntry(_ context.Context, userID int64, day int, startTime string) error {
	if m.err != nil {
		return m.err
	}
	m.entries[scheduleKey{userID, day}] = startTime
	return nil
}

func (m *mockScheduleStore) GetEntry(_ context.Context, userID int64, day int) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.entries[scheduleKey{userID, day}], nil
}

func (m *mockScheduleStore) ListAll(_ context.Context) ([]model.ScheduleEntry, error) {
	return nil, m.err
}

type responseKey struct {
	userID int64
	date   string
}

type mockResponseStore struct {
	responses map[responseKey]*model.DailyResponse
	err       error
}

func newMockResponseStore() *mockResponseStore {
	return &mockResponseStore{responses: make(map[responseKey]*model.DailyResponse)}
}

func (m *mockResponseStore) Save(_ context.Context, resp *model.DailyResponse) error {
	if m.err != nil {
		return m.err
	}
	clone := *resp
	m.responses[responseKey{resp.UserID, resp.ResponseDate.Format("2006-01-02")}] = &clone
	return nil
}

func (m *mockResponseStore) ListByDate(_ context.Context, date time.Time) ([]model.ResponseRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	var rows []model.ResponseRow
	for key, resp := range m.responses {
		if key.date == date.Format("2006-01-02") {
			rows = append(rows, model.ResponseRow{
				Status:      resp.Status,
				CustomTime:  resp.CustomTime,
				RespondedAt: resp.RespondedAt,
			})
		}
	}
	return rows, nil
}
