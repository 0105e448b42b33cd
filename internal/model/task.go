package model

import "time"

// Task is a single todo item owned by a user. Deadline is the aggregation
// key for daily statistics together with UserID.
type Task struct {
	ID            string
	UserID        string
	Raw           string // original free-form input the task was created from
	Title         string
	IsImportant   bool
	IsLife        bool   // true = personal/life category, false = work
	TagID         string // empty means untagged
	Difficulty    int    // 1..5 subjective effort
	EstimatedTime int    // minutes, >= 0
	Deadline      string // YYYY-MM-DD
	IsCompleted   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Tag is a per-user task label.
type Tag struct {
	ID        string
	UserID    string
	Name      string
	Color     string
	CreatedAt time.Time
}

// User is an account identity.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
