package usecase_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"daily-task-management/internal/model"
	"daily-task-management/internal/user"
	"daily-task-management/internal/user/repository"
	"daily-task-management/internal/user/usecase"
	"daily-task-management/pkg/scope"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo implements repository.Repository with overridable behavior.
type mockRepo struct {
	createFunc func(opt repository.CreateUserOptions) (model.User, error)
	getOneFunc func(opt repository.GetOneUserOptions) (model.User, error)

	creates []repository.CreateUserOptions
}

func (m *mockRepo) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	m.creates = append(m.creates, opt)
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.User{ID: "user-1", Email: opt.Email, Username: opt.Username, PasswordHash: opt.PasswordHash}, nil
}

func (m *mockRepo) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.User{}, nil
}

// mockScopeManager returns a fixed token.
type mockScopeManager struct {
	generated []string
}

func (m *mockScopeManager) Generate(userID string) (string, error) {
	m.generated = append(m.generated, userID)
	return "token-abc", nil
}

func (m *mockScopeManager) Verify(tokenString string) (scope.Claims, error) {
	return scope.Claims{}, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Hashes Password", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(repo, nil, &mockLogger{})

		out, err := uc.Register(ctx, user.RegisterInput{Email: "a@b.com", Username: "alice", Password: "supersecret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.creates[0].PasswordHash == "supersecret" {
			t.Fatalf("password stored in plaintext")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(repo.creates[0].PasswordHash), []byte("supersecret")); err != nil {
			t.Errorf("stored hash does not verify: %v", err)
		}
		if out.User.Email != "a@b.com" {
			t.Errorf("unexpected user: %+v", out.User)
		}
	})

	t.Run("Email Taken", func(t *testing.T) {
		repo := &mockRepo{getOneFunc: func(opt repository.GetOneUserOptions) (model.User, error) {
			if opt.Email != "" {
				return model.User{ID: "user-9"}, nil
			}
			return model.User{}, nil
		}}
		uc := usecase.New(repo, nil, &mockLogger{})

		if _, err := uc.Register(ctx, user.RegisterInput{Email: "a@b.com", Username: "alice", Password: "supersecret"}); !errors.Is(err, user.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("Username Taken", func(t *testing.T) {
		repo := &mockRepo{getOneFunc: func(opt repository.GetOneUserOptions) (model.User, error) {
			if opt.Username != "" {
				return model.User{ID: "user-9"}, nil
			}
			return model.User{}, nil
		}}
		uc := usecase.New(repo, nil, &mockLogger{})

		if _, err := uc.Register(ctx, user.RegisterInput{Email: "a@b.com", Username: "alice", Password: "supersecret"}); !errors.Is(err, user.ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	account := model.User{ID: "user-1", Email: "a@b.com", PasswordHash: string(hash)}

	t.Run("Success Issues Token", func(t *testing.T) {
		repo := &mockRepo{getOneFunc: func(opt repository.GetOneUserOptions) (model.User, error) {
			return account, nil
		}}
		scopes := &mockScopeManager{}
		uc := usecase.New(repo, scopes, &mockLogger{})

		out, err := uc.Login(ctx, user.LoginInput{Email: "a@b.com", Password: "supersecret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token != "token-abc" {
			t.Errorf("expected token, got %q", out.Token)
		}
		if len(scopes.generated) != 1 || scopes.generated[0] != "user-1" {
			t.Errorf("token not generated for the account: %v", scopes.generated)
		}
	})

	t.Run("Wrong Password", func(t *testing.T) {
		repo := &mockRepo{getOneFunc: func(opt repository.GetOneUserOptions) (model.User, error) {
			return account, nil
		}}
		uc := usecase.New(repo, &mockScopeManager{}, &mockLogger{})

		if _, err := uc.Login(ctx, user.LoginInput{Email: "a@b.com", Password: "wrong"}); !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Unknown Email Same Error", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockScopeManager{}, &mockLogger{})

		if _, err := uc.Login(ctx, user.LoginInput{Email: "nobody@b.com", Password: "supersecret"}); !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestMe(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Account", func(t *testing.T) {
		repo := &mockRepo{getOneFunc: func(opt repository.GetOneUserOptions) (model.User, error) {
			return model.User{ID: opt.ID, Username: "alice"}, nil
		}}
		uc := usecase.New(repo, nil, &mockLogger{})

		out, err := uc.Me(ctx, model.Scope{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.ID != "user-1" {
			t.Errorf("unexpected user: %+v", out.User)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, nil, &mockLogger{})

		if _, err := uc.Me(ctx, model.Scope{UserID: "ghost"}); !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}
