package stats

import (
	"math"

	"daily-task-management/internal/model"
)

// ComputeScores converts the task set of one (date, user) into a bounded
// balance index and an unbounded productivity index. Pure function; callers
// never pass an empty task set (the stat record is deleted instead).
func ComputeScores(tasks []model.Task, cfg ScoreConfig) (Scores, error) {
	if cfg.AvailableMinutes <= 0 {
		return Scores{}, ErrInvalidCapacity
	}
	available := float64(cfg.AvailableMinutes)

	var totalLoad float64
	var totalEstimatedTime int
	var productivity float64

	for _, task := range tasks {
		difficultyLoad := float64(task.Difficulty) / 5 * cfg.DifficultyWeight
		timeLoad := float64(task.EstimatedTime) / available * cfg.TimeWeight

		typeMultiplier := cfg.WorkMultiplier
		if task.IsLife {
			typeMultiplier = cfg.LifeMultiplier
		}

		totalLoad += (difficultyLoad + timeLoad) * typeMultiplier * cfg.Scale
		totalEstimatedTime += task.EstimatedTime

		if task.IsCompleted {
			productivity += difficultyLoad*50 + timeLoad*30
		}
	}

	// Overload correction: days packed beyond capacity get a super-linear
	// penalty. Only the final index is clamped.
	if totalEstimatedTime > cfg.AvailableMinutes {
		totalLoad *= float64(totalEstimatedTime) / available
	}

	return Scores{
		BalanceNum:      clamp(int(math.Round(totalLoad*100)), 0, 100),
		ProductivityNum: math.Round(productivity*100) / 100,
	}, nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
