package usecase_test

import (
	"context"
	"errors"
	"testing"

	"daily-task-management/internal/model"
	"daily-task-management/internal/tag"
	"daily-task-management/internal/tag/repository"
	"daily-task-management/internal/tag/usecase"
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
	getOneFunc func(opt repository.GetOneTagOptions) (model.Tag, error)
	createFunc func(opt repository.CreateTagOptions) (model.Tag, error)
	listFunc   func(opt repository.ListTagsOptions) ([]model.Tag, error)
	updateFunc func(opt repository.UpdateTagOptions) (model.Tag, error)
	deleteFunc func(opt repository.DeleteTagOptions) error

	updates []repository.UpdateTagOptions
	deletes []repository.DeleteTagOptions
}

func (m *mockRepo) CreateTag(ctx context.Context, opt repository.CreateTagOptions) (model.Tag, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Tag{ID: "tag-1", UserID: opt.UserID, Name: opt.Name, Color: opt.Color}, nil
}

func (m *mockRepo) GetOneTag(ctx context.Context, opt repository.GetOneTagOptions) (model.Tag, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.Tag{}, nil
}

func (m *mockRepo) ListTags(ctx context.Context, opt repository.ListTagsOptions) ([]model.Tag, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) UpdateTag(ctx context.Context, opt repository.UpdateTagOptions) (model.Tag, error) {
	m.updates = append(m.updates, opt)
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return model.Tag{ID: opt.ID, UserID: opt.UserID, Name: opt.Name, Color: opt.Color}, nil
}

func (m *mockRepo) DeleteTag(ctx context.Context, opt repository.DeleteTagOptions) error {
	m.deletes = append(m.deletes, opt)
	if m.deleteFunc != nil {
		return m.deleteFunc(opt)
	}
	return nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("Success", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		out, err := uc.Create(ctx, sc, tag.CreateTagInput{Name: "work", Color: "#ff0000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tag.Name != "work" || out.Tag.UserID != "user-1" {
			t.Errorf("unexpected tag: %+v", out.Tag)
		}
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		repo := &mockRepo{getOneFunc: func(opt repository.GetOneTagOptions) (model.Tag, error) {
			return model.Tag{ID: "tag-1", Name: opt.Name}, nil
		}}
		uc := usecase.New(repo, &mockLogger{})

		if _, err := uc.Create(ctx, sc, tag.CreateTagInput{Name: "work"}); !errors.Is(err, tag.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("Same Name Different Users Allowed", func(t *testing.T) {
		// Uniqueness is scoped by user; the lookup carries the caller's id.
		var gotOpt repository.GetOneTagOptions
		repo := &mockRepo{getOneFunc: func(opt repository.GetOneTagOptions) (model.Tag, error) {
			gotOpt = opt
			return model.Tag{}, nil
		}}
		uc := usecase.New(repo, &mockLogger{})

		if _, err := uc.Create(ctx, sc, tag.CreateTagInput{Name: "work"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOpt.UserID != "user-1" || gotOpt.Name != "work" {
			t.Errorf("duplicate check not user-scoped: %+v", gotOpt)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("Partial Update Keeps Existing Fields", func(t *testing.T) {
		repo := &mockRepo{getOneFunc: func(opt repository.GetOneTagOptions) (model.Tag, error) {
			if opt.ID != "" {
				return model.Tag{ID: "tag-1", UserID: "user-1", Name: "work", Color: "#ff0000"}, nil
			}
			return model.Tag{}, nil
		}}
		uc := usecase.New(repo, &mockLogger{})

		if _, err := uc.Update(ctx, sc, tag.UpdateTagInput{ID: "tag-1", Color: "#00ff00"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.updates[0].Name != "work" || repo.updates[0].Color != "#00ff00" {
			t.Errorf("unexpected merge: %+v", repo.updates[0])
		}
	})

	t.Run("Rename Collision", func(t *testing.T) {
		repo := &mockRepo{getOneFunc: func(opt repository.GetOneTagOptions) (model.Tag, error) {
			if opt.ID != "" {
				return model.Tag{ID: "tag-1", Name: "work"}, nil
			}
			return model.Tag{ID: "tag-2", Name: opt.Name}, nil
		}}
		uc := usecase.New(repo, &mockLogger{})

		if _, err := uc.Update(ctx, sc, tag.UpdateTagInput{ID: "tag-1", Name: "life"}); !errors.Is(err, tag.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		if _, err := uc.Update(ctx, sc, tag.UpdateTagInput{ID: "nope", Name: "x"}); !errors.Is(err, tag.ErrTagNotFound) {
			t.Errorf("expected ErrTagNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("Success", func(t *testing.T) {
		repo := &mockRepo{getOneFunc: func(opt repository.GetOneTagOptions) (model.Tag, error) {
			return model.Tag{ID: "tag-1", UserID: "user-1"}, nil
		}}
		uc := usecase.New(repo, &mockLogger{})

		if err := uc.Delete(ctx, sc, "tag-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.deletes) != 1 || repo.deletes[0].UserID != "user-1" {
			t.Errorf("expected scoped delete, got %v", repo.deletes)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		if err := uc.Delete(ctx, sc, "nope"); !errors.Is(err, tag.ErrTagNotFound) {
			t.Errorf("expected ErrTagNotFound, got %v", err)
		}
	})
}
