package models

type GenerateReceiptResponse struct {
	User     User         `json:"user"`
	Projects []DisplayRow `json:"projects"`
	Teams    []Team       `json:"teams"`
	Stats    ReceiptStats `json:"stats"`
}

type SaveStatsResponse struct {
	Stats StatsRecord `json:"stats"`
}

type LeaderboardResponse struct {
	Entries []StatsRecord `json:"entries"`
}
