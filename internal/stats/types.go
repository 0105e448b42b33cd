package stats

import "daily-task-management/internal/model"

// ScoreConfig carries the weighting constants for the balance and
// productivity scores. It is passed explicitly so tests can vary capacity
// and weights without process-wide state.
type ScoreConfig struct {
	DifficultyWeight float64
	TimeWeight       float64
	WorkMultiplier   float64
	LifeMultiplier   float64
	Scale            float64
	AvailableMinutes int // daily capacity in minutes, must be > 0
}

// DefaultScoreConfig returns the production weighting with the given daily
// capacity (configured; 480 = 8 hours by default).
func DefaultScoreConfig(availableMinutes int) ScoreConfig {
	return ScoreConfig{
		DifficultyWeight: 0.55,
		TimeWeight:       0.45,
		WorkMultiplier:   1.3,
		LifeMultiplier:   -0.4,
		Scale:            0.4,
		AvailableMinutes: availableMinutes,
	}
}

// Scores is the result of scoring one day's task set.
type Scores struct {
	BalanceNum      int     // [0,100]
	ProductivityNum float64 // >= 0, two decimals, unbounded above
}

// Message is a preset title/message pair attached to a balance band.
type Message struct {
	Title   string
	Message string
}

// --- UseCase Inputs/Outputs ---

type RangeInput struct {
	Start string // YYYY-MM-DD, clamped to the first of its month
	End   string // YYYY-MM-DD
}

type ListStatsOutput struct {
	Stats []model.DailyStat
}
