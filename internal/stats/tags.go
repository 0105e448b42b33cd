package stats

import (
	"sort"

	"daily-task-management/internal/model"
)

// AggregateTags builds the ranked tag-usage histogram for one day's task
// set: occurrence counts of each non-empty tag, sorted descending by count.
// Ties keep the order tags first appeared while scanning tasks. Untagged
// tasks contribute nothing.
func AggregateTags(tasks []model.Task) []model.TagStat {
	counts := make(map[string]int)
	var firstSeen []string

	for _, task := range tasks {
		if task.TagID == "" {
			continue
		}
		if _, ok := counts[task.TagID]; !ok {
			firstSeen = append(firstSeen, task.TagID)
		}
		counts[task.TagID]++
	}

	tagStats := make([]model.TagStat, 0, len(firstSeen))
	for _, tagID := range firstSeen {
		tagStats = append(tagStats, model.TagStat{TagID: tagID, Count: counts[tagID]})
	}

	sort.SliceStable(tagStats, func(i, j int) bool {
		return tagStats[i].Count > tagStats[j].Count
	})
	return tagStats
}
