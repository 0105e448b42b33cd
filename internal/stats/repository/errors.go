package repository

import "errors"

var (
	ErrFailedToQueryTasks = errors.New("failed to query tasks")
	ErrFailedToUpsert     = errors.New("failed to upsert stat record")
	ErrFailedToDelete     = errors.New("failed to delete stat record")
	ErrFailedToList       = errors.New("failed to list stat records")
)
