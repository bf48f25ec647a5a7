// services/stats.go
package services

import (
	"financequest/models"
)

// GlobalStats summarizes the whole roster for the community panel.
type GlobalStats struct {
	TotalSaved   float64 `json:"total_saved"`
	Participants int     `json:"participants"`
	AverageLevel float64 `json:"average_level"`
}

// ComputeGlobalStats aggregates savings and progression across every
// profile. The average level keeps the original definition: total XP per
// user divided by the XP step, not an average of the level column.
func ComputeGlobalStats(roster []models.UserProfile) GlobalStats {
	stats := GlobalStats{Participants: len(roster)}

	var totalXP int
	for _, u := range roster {
		stats.TotalSaved += u.MoneySaved
		totalXP += u.XP
	}

	if len(roster) > 0 {
		stats.AverageLevel = float64(totalXP) / float64(len(roster)) / float64(xpPerLevelStep)
	}
	return stats
}
