package dto

// ActivitySummary is the number of activities of one type in a window and
// its share (0-100) of all activities in that window.
type ActivitySummary struct {
	ActivityType string  `json:"activityType" example:"VIEW"`
	Count        int64   `json:"count" example:"100"`
	Percentage   float64 `json:"percentage" example:"66.67"`
}
