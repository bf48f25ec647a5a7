// models/goal.go
package models

// Goal is a weekly objective with an XP reward. Standard goals come from
// the fixed catalog and are shared by every user; custom goals live on the
// owning profile with IsCustom set.
type Goal struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	XP       int    `json:"xp"`
	Icon     string `json:"icon"`
	IsCustom bool   `json:"is_custom"`
}

// WeeklyGoalCatalog is the fixed set of standard weekly goals. It is not
// persisted per user; only completion membership is.
var WeeklyGoalCatalog = []Goal{
	{ID: "goal-1", Title: "Save R$ 200 this week", XP: 150, Icon: "💵"},
	{ID: "goal-2", Title: "Cook 5 meals at home", XP: 100, Icon: "🍽️"},
	{ID: "goal-3", Title: "Track expenses for 7 days", XP: 200, Icon: "✏️"},
	{ID: "goal-4", Title: "Invest at least R$ 100", XP: 250, Icon: "📈"},
	{ID: "goal-5", Title: "Avoid impulse purchases", XP: 120, Icon: "🚫"},
}

// CatalogGoal looks up a standard goal by id.
func CatalogGoal(id string) (Goal, bool) {
	for _, g := range WeeklyGoalCatalog {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}
