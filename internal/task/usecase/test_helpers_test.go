package usecase_test

import (
	"context"

	"daily-task-management/internal/model"
	"daily-task-management/internal/stats"
	"daily-task-management/internal/task/repository"
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
	createFunc func(opt repository.CreateTaskOptions) (model.Task, error)
	getOneFunc func(opt repository.GetOneTaskOptions) (model.Task, error)
	listFunc   func(opt repository.ListTasksOptions) ([]model.Task, error)
	updateFunc func(opt repository.UpdateTaskOptions) (model.Task, error)
	deleteFunc func(opt repository.DeleteTaskOptions) error

	creates []repository.CreateTaskOptions
	updates []repository.UpdateTaskOptions
	deletes []repository.DeleteTaskOptions
	lists   []repository.ListTasksOptions
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.creates = append(m.creates, opt)
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Task{
		ID:       "task-1",
		UserID:   opt.UserID,
		Title:    opt.Title,
		Deadline: opt.Deadline,
	}, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.Task{}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	m.lists = append(m.lists, opt)
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.updates = append(m.updates, opt)
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return model.Task{
		ID:          opt.ID,
		UserID:      opt.UserID,
		Title:       opt.Title,
		Deadline:    opt.Deadline,
		IsCompleted: opt.IsCompleted,
	}, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) error {
	m.deletes = append(m.deletes, opt)
	if m.deleteFunc != nil {
		return m.deleteFunc(opt)
	}
	return nil
}

// mockStatsUC records recompute calls; reads are never exercised here.
type mockStatsUC struct {
	recomputeFunc func(date, userID string) error
	recomputes    []string
}

func (m *mockStatsUC) Recompute(ctx context.Context, date string, userID string) error {
	m.recomputes = append(m.recomputes, date)
	if m.recomputeFunc != nil {
		return m.recomputeFunc(date, userID)
	}
	return nil
}

func (m *mockStatsUC) List(ctx context.Context, sc model.Scope) (stats.ListStatsOutput, error) {
	return stats.ListStatsOutput{}, nil
}

func (m *mockStatsUC) Range(ctx context.Context, sc model.Scope, input stats.RangeInput) (stats.ListStatsOutput, error) {
	return stats.ListStatsOutput{}, nil
}
