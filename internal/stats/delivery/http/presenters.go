package http

import (
	"daily-task-management/internal/model"
	"daily-task-management/internal/stats"
)

// --- Response DTOs ---

type balanceDataResp struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	BalanceNum int    `json:"balance_num"`
}

type tagStatResp struct {
	TagID string `json:"tag_id"`
	Count int    `json:"count"`
}

type dailyStatResp struct {
	Date            string          `json:"date"`
	BalanceData     balanceDataResp `json:"balance_data"`
	ProductivityNum float64         `json:"productivity_num"`
	TagStats        []tagStatResp   `json:"tag_stats"`
	Center          [2]float64      `json:"center"`
}

func newDailyStatResp(stat model.DailyStat) dailyStatResp {
	tagStats := make([]tagStatResp, len(stat.TagStats))
	for i, ts := range stat.TagStats {
		tagStats[i] = tagStatResp{TagID: ts.TagID, Count: ts.Count}
	}
	return dailyStatResp{
		Date: stat.Date,
		BalanceData: balanceDataResp{
			Title:      stat.BalanceData.Title,
			Message:    stat.BalanceData.Message,
			BalanceNum: stat.BalanceData.BalanceNum,
		},
		ProductivityNum: stat.ProductivityNum,
		TagStats:        tagStats,
		Center:          stat.Center,
	}
}

type listResp struct {
	Stats []dailyStatResp `json:"stats"`
}

func (h *handler) newListResp(out stats.ListStatsOutput) listResp {
	records := make([]dailyStatResp, len(out.Stats))
	for i, stat := range out.Stats {
		records[i] = newDailyStatResp(stat)
	}
	return listResp{Stats: records}
}
