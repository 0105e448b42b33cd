package scope_test

import (
	"errors"
	"testing"
	"time"

	"daily-task-management/pkg/scope"
)

func TestManager(t *testing.T) {
	mgr := scope.NewManager("test-secret", time.Hour)

	t.Run("Generate And Verify", func(t *testing.T) {
		token, err := mgr.Generate("user-123")
		if err != nil {
			t.Fatalf("unexpected error generating token: %v", err)
		}

		claims, err := mgr.Verify(token)
		if err != nil {
			t.Fatalf("unexpected error verifying token: %v", err)
		}
		if claims.UserID != "user-123" {
			t.Errorf("expected user-123, got %s", claims.UserID)
		}
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := mgr.Verify("not-a-token")
		if !errors.Is(err, scope.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := scope.NewManager("other-secret", time.Hour)
		token, _ := other.Generate("user-123")

		_, err := mgr.Verify(token)
		if !errors.Is(err, scope.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Expired Token", func(t *testing.T) {
		expired := scope.NewManager("test-secret", -time.Minute)
		token, _ := expired.Generate("user-123")

		_, err := mgr.Verify(token)
		if !errors.Is(err, scope.ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})
}
