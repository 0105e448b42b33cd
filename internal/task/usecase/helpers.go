package usecase

import (
	"context"
	"time"

	"daily-task-management/pkg/datemath"
)

// resolveDeadline turns the submitted deadline into a concrete YYYY-MM-DD
// date. Absolute dates pass through; anything else is treated as a relative
// expression. Unrecognized expressions fall back to today with a warning so
// a typo never loses a task.
func (uc *implUseCase) resolveDeadline(ctx context.Context, raw string) string {
	now := time.Now()
	if raw == "" {
		return uc.dates.Today(now)
	}
	if _, err := time.Parse(datemath.DateFormat, raw); err == nil {
		return raw
	}

	resolved, ok := uc.dates.ResolveDate(raw, now)
	if !ok {
		uc.l.Warnf(ctx, "unrecognized deadline expression %q, defaulting to today", raw)
	}
	return resolved
}

// refreshStats recomputes the daily stats of each distinct date. The task
// mutation has already committed, so failures here are logged rather than
// surfaced; the next mutation on the date repairs the record.
func (uc *implUseCase) refreshStats(ctx context.Context, userID string, dates ...string) {
	seen := make(map[string]struct{}, len(dates))
	for _, date := range dates {
		if _, dup := seen[date]; dup {
			continue
		}
		seen[date] = struct{}{}
		if err := uc.statsUC.Recompute(ctx, date, userID); err != nil {
			uc.l.Warnf(ctx, "stats recompute failed for %s: %v", date, err)
		}
	}
}

// orderClause maps a sort mode onto a SQL order expression.
func orderClause(sort string) string {
	switch sort {
	case "important":
		return "is_important DESC, created_at DESC"
	case "recent":
		return "created_at DESC, is_important DESC"
	default:
		return "deadline ASC, is_important DESC"
	}
}
