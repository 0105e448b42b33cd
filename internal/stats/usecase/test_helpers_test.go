package usecase_test

import (
	"context"

	"daily-task-management/internal/model"
	"daily-task-management/internal/stats/repository"
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
	listTasksFunc func(opt repository.ListTasksByDeadlineOptions) ([]model.Task, error)
	upsertFunc    func(opt repository.UpsertStatOptions) error
	deleteFunc    func(opt repository.DeleteStatOptions) error
	listStatsFunc func(opt repository.ListStatsOptions) ([]model.DailyStat, error)

	upserts []repository.UpsertStatOptions
	deletes []repository.DeleteStatOptions
}

func (m *mockRepo) ListTasksByDeadline(ctx context.Context, opt repository.ListTasksByDeadlineOptions) ([]model.Task, error) {
	if m.listTasksFunc != nil {
		return m.listTasksFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) UpsertStat(ctx context.Context, opt repository.UpsertStatOptions) error {
	m.upserts = append(m.upserts, opt)
	if m.upsertFunc != nil {
		return m.upsertFunc(opt)
	}
	return nil
}

func (m *mockRepo) DeleteStat(ctx context.Context, opt repository.DeleteStatOptions) error {
	m.deletes = append(m.deletes, opt)
	if m.deleteFunc != nil {
		return m.deleteFunc(opt)
	}
	return nil
}

func (m *mockRepo) ListStats(ctx context.Context, opt repository.ListStatsOptions) ([]model.DailyStat, error) {
	if m.listStatsFunc != nil {
		return m.listStatsFunc(opt)
	}
	return nil, nil
}
