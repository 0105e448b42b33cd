package postgre

import (
	"fmt"
	"strings"

	repo "daily-task-management/internal/task/repository"
)

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
// UserID is always applied; the order clause comes from the use case and is
// never user input.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{opt.UserID}
	idx := 2

	if opt.Deadline != "" {
		conditions = append(conditions, fmt.Sprintf("deadline = $%d", idx))
		args = append(args, opt.Deadline)
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}

	mods := fmt.Sprintf("WHERE %s ORDER BY %s", strings.Join(conditions, " AND "), orderBy)
	return mods, args
}
