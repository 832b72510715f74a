package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestUserService_Register(t *testing.T) {
	store := newMockUserStore()
	svc := NewUserService(store, zap.NewNop())

	user, err := svc.Register(context.Background(), 42, "ivan")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Nickname != "ivan" {
		t.Fatalf("Nickname = %q, want ivan", user.Nickname)
	}
	if user.Username != "ivan" {
		t.Fatalf("Username = %q, want ivan", user.Username)
	}
}

func TestUserService_Register_NoUsername(t *testing.T) {
	store := newMockUserStore()
	svc := NewUserService(store, zap.NewNop())

	user, err := svc.Register(context.Background(), 42, "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Nickname != "User_42" {
		t.Fatalf("Nickname = %q, want User_42", user.Nickname)
	}
}

func TestUserService_Register_Idempotent(t *testing.T) {
	store := newMockUserStore()
	svc := NewUserService(store, zap.NewNop())

	if _, err := svc.Register(context.Background(), 42, "ivan"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := svc.Rename(context.Background(), 42, "Ваня"); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	// Повторный /start не сбрасывает ник
	user, err := svc.Register(context.Background(), 42, "ivan")
	if err != nil {
		t.Fatalf("second Register: %v", err)
	}
	if user.Nickname != "Ваня" {
		t.Fatalf("Nickname after re-register = %q, want Ваня", user.Nickname)
	}
	if len(store.users) != 1 {
		t.Fatalf("users = %d, want 1", len(store.users))
	}
}

func TestUserService_Rename_Empty(t *testing.T) {
	store := newMockUserStore()
	svc := NewUserService(store, zap.NewNop())

	_, _ = svc.Register(context.Background(), 42, "ivan")

	for _, bad := range []string{"", "   ", "\t\n"} {
		if err := svc.Rename(context.Background(), 42, bad); err == nil {
			t.Errorf("Rename(%q) = nil, want error", bad)
		}
	}
	if store.users[42].Nickname != "ivan" {
		t.Fatalf("Nickname = %q, want unchanged ivan", store.users[42].Nickname)
	}
}

func TestUserService_Rename_Trimmed(t *testing.T) {
	store := newMockUserStore()
	svc := NewUserService(store, zap.NewNop())

	_, _ = svc.Register(context.Background(), 42, "ivan")

	if err := svc.Rename(context.Background(), 42, "  Ваня  "); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if store.users[42].Nickname != "Ваня" {
		t.Fatalf("Nickname = %q, want Ваня", store.users[42].Nickname)
	}
}

func TestUserService_Rename_UnknownUser(t *testing.T) {
	svc := NewUserService(newMockUserStore(), zap.NewNop())

	if err := svc.Rename(context.Background(), 99, "Ваня"); err == nil {
		t.Fatal("Rename of unknown user must fail")
	}
}

func TestUserService_Register_StorageErrorSurfaces(t *testing.T) {
	store := newMockUserStore()
	store.err = errors.New("connection refused")
	svc := NewUserService(store, zap.NewNop())

	if _, err := svc.Register(context.Background(), 42, "ivan"); err == nil {
		t.Fatal("storage error must surface to the caller")
	}
}
