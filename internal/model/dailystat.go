package model

import "time"

// BalanceData is the balance score with its display message.
type BalanceData struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	BalanceNum int    `json:"balanceNum"` // [0,100]
}

// TagStat is one entry of the ranked tag-usage histogram.
type TagStat struct {
	TagID string `json:"tagId"`
	Count int    `json:"count"`
}

// DailyStat is the aggregate record for one (date, user) pair. It exists iff
// at least one task has that deadline, and is rewritten wholesale on every
// recomputation.
type DailyStat struct {
	ID              string
	UserID          string
	Date            string // YYYY-MM-DD
	BalanceData     BalanceData
	ProductivityNum float64 // >= 0, two-decimal precision, unbounded above
	TagStats        []TagStat
	Center          [2]float64 // display coordinates in [0.2,0.8]^2, redrawn per recompute
	UpdatedAt       time.Time
}
