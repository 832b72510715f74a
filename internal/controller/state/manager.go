package state

import (
	"sync"
)

// Manager управляет состояниями диалогов пользователей.
// Состояния живут только в памяти: после рестарта процесса пользователь
// просто повторяет прерванное действие.
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*userData // telegramID -> userData
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*userData),
	}
}

// GetState получает текущее состояние пользователя
func (m *Manager) GetState(telegramID int64) UserState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if data, exists := m.states[telegramID]; exists {
		return data.state
	}
	return StateNone
}

// SetState устанавливает состояние пользователя.
// StateNone удаляет запись целиком.
func (m *Manager) SetState(telegramID int64, state UserState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state == StateNone {
		delete(m.states, telegramID)
		return
	}

	m.states[telegramID] = &userData{state: state}
}

// AwaitScheduleTime переводит пользователя в ожидание времени
// для конкретного дня недели
func (m *Manager) AwaitScheduleTime(telegramID int64, day int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[telegramID] = &userData{state: StateAwaitingScheduleTime, day: day}
}

// Day возвращает день недели, для которого ожидается время.
// false если пользователь не в StateAwaitingScheduleTime.
func (m *Manager) Day(telegramID int64) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, exists := m.states[telegramID]
	if !exists || data.state != StateAwaitingScheduleTime {
		return 0, false
	}
	return data.day, true
}

// Clear очищает состояние пользователя
func (m *Manager) Clear(telegramID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, telegramID)
}
