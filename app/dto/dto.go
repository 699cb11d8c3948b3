package dto

// ChartData feeds the dashboard charts, computed over the full ticket set.
type ChartData struct {
	PriorityCounts map[string]int `json:"priority_counts"`
	StatusCounts   map[string]int `json:"status_counts"`
}

type UserSummary struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}
