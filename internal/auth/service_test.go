package auth

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLockout(t *testing.T) *Lockout {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewLockout(rdb)
}

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo, nil)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo, newTestLockout(t))

	_, err := service.Register("Test User", "test@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := service.Login(context.Background(), "test@example.com", "Password@123")
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if user.Email != "test@example.com" {
		t.Fatalf("unexpected user: %s", user.Email)
	}
}

func TestLoginLockoutAfterFiveFailures(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo, newTestLockout(t))

	_, err := service.Register("Test User", "test@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 5; i++ {
		_, err := service.Login(context.Background(), "test@example.com", "wrong")
		if err != ErrInvalidCredentials {
			t.Fatalf("attempt %d: expected invalid credentials, got %v", i+1, err)
		}
	}

	// 6th attempt hits the lock even with the RIGHT password
	_, err = service.Login(context.Background(), "test@example.com", "Password@123")
	if err != ErrAccountLocked {
		t.Fatalf("expected account locked, got %v", err)
	}
}

func TestLoginSuccessResetsFailureCounter(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo, newTestLockout(t))

	_, err := service.Register("Test User", "test@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 4; i++ {
		_, _ = service.Login(context.Background(), "test@example.com", "wrong")
	}

	if _, err := service.Login(context.Background(), "test@example.com", "Password@123"); err != nil {
		t.Fatalf("expected login to succeed before lock, got %v", err)
	}

	// Counter was reset, so 4 more failures still do not lock
	for i := 0; i < 4; i++ {
		_, _ = service.Login(context.Background(), "test@example.com", "wrong")
	}

	if _, err := service.Login(context.Background(), "test@example.com", "Password@123"); err != nil {
		t.Fatalf("expected login to succeed after reset, got %v", err)
	}
}
