// models/profile.go
package models

import (
	"time"
)

// UserProfile is the per-participant record stored as a single JSON
// document in the profile store. MoneySaved is kept equal to the sum of
// the investment amounts on every engine mutation.
type UserProfile struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Avatar             string       `json:"avatar"`
	MoneySaved         float64      `json:"money_saved"`
	GoalAmount         float64      `json:"goal_amount"`
	XP                 int          `json:"xp"`
	Level              int          `json:"level"`
	XPToNextLevel      int          `json:"xp_to_next_level"`
	Investments        []Investment `json:"investments"`
	CompletedGoals     []string     `json:"completed_goals"`
	CustomGoals        []Goal       `json:"custom_goals"`
	Achievements       []string     `json:"achievements"`
	ParticipateRanking bool         `json:"participate_ranking"`
	CreatedAt          time.Time    `json:"created_at"`
	LastUpdate         time.Time    `json:"last_update"`
}

// Investment is a single savings entry. Date is a calendar day in
// YYYY-MM-DD form, matching the stored document format.
type Investment struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// HasCompletedGoal reports whether goalID is in the completed set.
func (p *UserProfile) HasCompletedGoal(goalID string) bool {
	for _, id := range p.CompletedGoals {
		if id == goalID {
			return true
		}
	}
	return false
}

// FindInvestment returns the index of the investment with the given id,
// or -1 if it is not present.
func (p *UserProfile) FindInvestment(id string) int {
	for i, inv := range p.Investments {
		if inv.ID == id {
			return i
		}
	}
	return -1
}

// FindCustomGoal returns the index of the custom goal with the given id,
// or -1 if it is not present.
func (p *UserProfile) FindCustomGoal(id string) int {
	for i, g := range p.CustomGoals {
		if g.ID == id {
			return i
		}
	}
	return -1
}
