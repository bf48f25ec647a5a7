// models/comparison.go
package models

// ComparisonSide is one participant's column in a head-to-head comparison.
type ComparisonSide struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Avatar         string  `json:"avatar"`
	Level          int     `json:"level"`
	XP             int     `json:"xp"`
	MoneySaved     float64 `json:"money_saved"`
	GoalProgress   float64 `json:"goal_progress"`
	CompletedGoals int     `json:"completed_goals"`
}

// ComparisonResult is the side-by-side summary for two selected users.
// BetterSaverID is empty when both saved exactly the same amount.
type ComparisonResult struct {
	Left            ComparisonSide `json:"left"`
	Right           ComparisonSide `json:"right"`
	BetterSaverID   string         `json:"better_saver_id,omitempty"`
	BetterSaverName string         `json:"better_saver_name,omitempty"`
	SavedDifference float64        `json:"saved_difference"`
}
