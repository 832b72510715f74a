package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dkhalov/planner_bot/internal/model"
	"github.com/dkhalov/planner_bot/internal/timeutil"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ── моки ──

type fakeSender struct {
	sent    []int64
	failFor map[int64]bool
}

func (f *fakeSender) SendMessage(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	chatID := params.ChatID.(int64)
	if f.failFor[chatID] {
		return nil, errors.New("forbidden: bot was blocked by the user")
	}
	f.sent = append(f.sent, chatID)
	return &models.Message{}, nil
}

type fakeUsers struct {
	users map[int64]*model.User
	order []int64
}

func (f *fakeUsers) ListIDs(context.Context) ([]int64, error) { return f.order, nil }

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	return f.users[id], nil
}

type fakeResponses struct {
	rows []model.ResponseRow
}

func (f *fakeResponses) TodayResponses(context.Context) ([]model.ResponseRow, error) {
	return f.rows, nil
}

func newTestNotifier(sender *fakeSender, users *fakeUsers, responses *fakeResponses) *Notifier {
	return New(sender, users, responses, zap.NewNop())
}

func addUser(f *fakeUsers, id int64, nickname string) {
	if f.users == nil {
		f.users = make(map[int64]*model.User)
	}
	f.users[id] = &model.User{ID: id, Nickname: nickname}
	f.order = append(f.order, id)
}

func row(nickname string, status model.ResponseStatus, customTime string) model.ResponseRow {
	return model.ResponseRow{
		Nickname:    nickname,
		Status:      status,
		CustomTime:  customTime,
		RespondedAt: time.Date(2024, time.March, 10, 19, 0, 0, 0, timeutil.Moscow),
	}
}

// ── сводка ──

func TestBroadcastSummary_NoResponsesSendsNobody(t *testing.T) {
	sender := &fakeSender{}
	users := &fakeUsers{}
	addUser(users, 1, "A")
	addUser(users, 2, "B")

	n := newTestNotifier(sender, users, &fakeResponses{})
	n.BroadcastSummary(context.Background())

	if len(sender.sent) != 0 {
		t.Fatalf("summary for empty day must go to nobody, sent to %v", sender.sent)
	}
}

func TestBroadcastSummary_SkipsNotReadyAndSilent(t *testing.T) {
	sender := &fakeSender{}
	users := &fakeUsers{}
	addUser(users, 1, "A") // ответил «Готов»
	addUser(users, 2, "B") // ответил «Не готов»
	addUser(users, 3, "C") // не отвечал

	responses := &fakeResponses{rows: []model.ResponseRow{
		row("A", model.StatusReady, "07:45"),
		row("B", model.StatusNotReady, ""),
	}}

	n := newTestNotifier(sender, users, responses)
	n.BroadcastSummary(context.Background())

	if len(sender.sent) != 1 || sender.sent[0] != 1 {
		t.Fatalf("only user A must receive the summary, sent to %v", sender.sent)
	}
}

func TestBroadcastSummary_MatchesByNickname(t *testing.T) {
	sender := &fakeSender{}
	users := &fakeUsers{}
	// Ник пользователя 2 совпадает с ником ответившего пользователя 1:
	// адресаты выбираются по нику, поэтому сводка уйдёт обоим
	addUser(users, 1, "Twin")
	addUser(users, 2, "Twin")

	responses := &fakeResponses{rows: []model.ResponseRow{
		row("Twin", model.StatusProbablyReady, ""),
	}}

	n := newTestNotifier(sender, users, responses)
	n.BroadcastSummary(context.Background())

	if len(sender.sent) != 2 {
		t.Fatalf("nickname matching must cross-match shared nicknames, sent to %v", sender.sent)
	}
}

func TestBroadcastSummary_FailureDoesNotStopLoop(t *testing.T) {
	sender := &fakeSender{failFor: map[int64]bool{1: true}}
	users := &fakeUsers{}
	addUser(users, 1, "A")
	addUser(users, 2, "B")

	responses := &fakeResponses{rows: []model.ResponseRow{
		row("A", model.StatusReady, "07:45"),
		row("B", model.StatusProbablyReady, ""),
	}}

	n := newTestNotifier(sender, users, responses)
	n.BroadcastSummary(context.Background())

	if len(sender.sent) != 1 || sender.sent[0] != 2 {
		t.Fatalf("user B must still receive the summary after A failed, sent to %v", sender.sent)
	}
}

// ── вопрос ──

func TestBroadcastQuestion_SendsToEveryone(t *testing.T) {
	sender := &fakeSender{}
	users := &fakeUsers{}
	addUser(users, 1, "A")
	addUser(users, 2, "B")
	addUser(users, 3, "C")

	n := newTestNotifier(sender, users, &fakeResponses{})
	n.BroadcastQuestion(context.Background())

	if len(sender.sent) != 3 {
		t.Fatalf("question must reach all users, sent to %v", sender.sent)
	}
}

func TestBroadcastQuestion_FailureDoesNotStopLoop(t *testing.T) {
	sender := &fakeSender{failFor: map[int64]bool{2: true}}
	users := &fakeUsers{}
	addUser(users, 1, "A")
	addUser(users, 2, "B")
	addUser(users, 3, "C")

	n := newTestNotifier(sender, users, &fakeResponses{})
	n.BroadcastQuestion(context.Background())

	if len(sender.sent) != 2 {
		t.Fatalf("users A and C must still get the question, sent to %v", sender.sent)
	}
}
