package repository

import "daily-task-management/internal/model"

// ListTasksByDeadlineOptions filters the task snapshot for one aggregation key.
type ListTasksByDeadlineOptions struct {
	Deadline string
	UserID   string
}

// UpsertStatOptions is the full replacement payload for one (date, user).
type UpsertStatOptions struct {
	Date            string
	UserID          string
	BalanceData     model.BalanceData
	ProductivityNum float64
	TagStats        []model.TagStat
	Center          [2]float64
}

// DeleteStatOptions identifies the stat record to remove.
type DeleteStatOptions struct {
	Date   string
	UserID string
}

// ListStatsOptions filters stats for reads. StartDate/EndDate are optional;
// both empty means all records of the user. Ordered by date ascending.
type ListStatsOptions struct {
	UserID    string
	StartDate string
	EndDate   string
}
