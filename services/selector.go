// services/selector.go
package services

import (
	"fmt"
	"sort"

	"financequest/apperrors"
	"financequest/models"
)

// Leaderboard comparison selector. The two product surfaces gate
// head-to-head comparisons differently: the dashboard requires the exact
// same level, the ranking page only the same tier category. Both rules
// stay available and each surface picks one.

// TierRule decides whether two profiles are comparable.
type TierRule int

const (
	TierExactLevel TierRule = iota
	TierCategory
)

// Rank filters the roster to participating users and orders it by XP
// descending. The sort is stable, so ties keep their roster order.
func Rank(roster []models.UserProfile) []models.UserProfile {
	ranked := make([]models.UserProfile, 0, len(roster))
	for _, u := range roster {
		if u.ParticipateRanking {
			ranked = append(ranked, u)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].XP > ranked[j].XP
	})
	return ranked
}

// FilterByCategory keeps the participating users of one tier category.
// An empty category means all participants.
func FilterByCategory(roster []models.UserProfile, category models.TierCategory) []models.UserProfile {
	filtered := make([]models.UserProfile, 0, len(roster))
	for _, u := range roster {
		if !u.ParticipateRanking {
			continue
		}
		if category != "" && models.CategoryForLevel(u.Level) != category {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered
}

// Selector holds the bounded comparison selection: at most two users,
// oldest first.
type Selector struct {
	Rule     TierRule
	Selected []models.UserProfile
}

// NewSelector rebuilds a selector from the ids of a previous selection.
// Ids no longer present in the roster are dropped.
func NewSelector(rule TierRule, selectedIDs []string, roster []models.UserProfile) *Selector {
	s := &Selector{Rule: rule}
	for _, id := range selectedIDs {
		if len(s.Selected) == 2 {
			break
		}
		for _, u := range roster {
			if u.ID == id {
				s.Selected = append(s.Selected, u)
				break
			}
		}
	}
	return s
}

// Toggle selects or deselects the given user. A user already selected is
// removed. Otherwise the oldest entry is evicted once the selection is
// full, and the candidate must share a tier with the remaining selection
// or the toggle fails with IncompatibleTierError.
func (s *Selector) Toggle(userID string, roster []models.UserProfile) error {
	for i, u := range s.Selected {
		if u.ID == userID {
			s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
			return nil
		}
	}

	var candidate *models.UserProfile
	for i := range roster {
		if roster[i].ID == userID {
			candidate = &roster[i]
			break
		}
	}
	if candidate == nil {
		return apperrors.NewNotFound("user", userID)
	}

	if len(s.Selected) >= 2 {
		s.Selected = s.Selected[1:]
	}

	if len(s.Selected) > 0 && !s.compatible(s.Selected[0], *candidate) {
		return apperrors.NewIncompatibleTier(s.tierLabel(s.Selected[0]), s.tierLabel(*candidate))
	}

	s.Selected = append(s.Selected, *candidate)
	return nil
}

// SelectedIDs returns the ids of the current selection, oldest first.
func (s *Selector) SelectedIDs() []string {
	ids := make([]string, len(s.Selected))
	for i, u := range s.Selected {
		ids[i] = u.ID
	}
	return ids
}

// CanCompare reports whether the selection holds two comparable users.
func (s *Selector) CanCompare() bool {
	return len(s.Selected) == 2 && s.compatible(s.Selected[0], s.Selected[1])
}

func (s *Selector) compatible(a, b models.UserProfile) bool {
	if s.Rule == TierExactLevel {
		return a.Level == b.Level
	}
	return models.CategoryForLevel(a.Level) == models.CategoryForLevel(b.Level)
}

func (s *Selector) tierLabel(u models.UserProfile) string {
	if s.Rule == TierExactLevel {
		return fmt.Sprintf("level %d", u.Level)
	}
	return models.CategoryName(models.CategoryForLevel(u.Level))
}

// Compare produces the head-to-head summary for two users. The better
// saver is the one with strictly more money saved; an exact tie names
// nobody. Neither profile is mutated.
func Compare(a, b models.UserProfile) models.ComparisonResult {
	result := models.ComparisonResult{
		Left:  comparisonSide(a),
		Right: comparisonSide(b),
	}

	switch {
	case a.MoneySaved > b.MoneySaved:
		result.BetterSaverID = a.ID
		result.BetterSaverName = a.Name
		result.SavedDifference = a.MoneySaved - b.MoneySaved
	case b.MoneySaved > a.MoneySaved:
		result.BetterSaverID = b.ID
		result.BetterSaverName = b.Name
		result.SavedDifference = b.MoneySaved - a.MoneySaved
	}

	return result
}

func comparisonSide(u models.UserProfile) models.ComparisonSide {
	return models.ComparisonSide{
		ID:             u.ID,
		Name:           u.Name,
		Avatar:         u.Avatar,
		Level:          u.Level,
		XP:             u.XP,
		MoneySaved:     u.MoneySaved,
		GoalProgress:   GoalProgress(u),
		CompletedGoals: len(u.CompletedGoals),
	}
}
