package services

import (
	"errors"
	"testing"

	"financequest/apperrors"
	"financequest/models"
)

func rosterFixture() []models.UserProfile {
	return []models.UserProfile{
		{ID: "u-low", Name: "Low", Level: 2, XP: 100, MoneySaved: 800, ParticipateRanking: true},
		{ID: "u-high", Name: "High", Level: 5, XP: 900, MoneySaved: 5000, ParticipateRanking: true},
		{ID: "u-mid", Name: "Mid", Level: 3, XP: 500, MoneySaved: 2000, ParticipateRanking: true},
		{ID: "u-private", Name: "Private", Level: 9, XP: 9000, MoneySaved: 99999, ParticipateRanking: false},
	}
}

func TestRank_FiltersAndOrders(t *testing.T) {
	ranked := Rank(rosterFixture())

	if len(ranked) != 3 {
		t.Fatalf("expected 3 participants, got %d", len(ranked))
	}
	expected := []string{"u-high", "u-mid", "u-low"}
	for i, id := range expected {
		if ranked[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i+1, id, ranked[i].ID)
		}
	}
}

func TestRank_StableOnTies(t *testing.T) {
	roster := []models.UserProfile{
		{ID: "first", XP: 500, ParticipateRanking: true},
		{ID: "second", XP: 500, ParticipateRanking: true},
	}
	ranked := Rank(roster)
	if ranked[0].ID != "first" || ranked[1].ID != "second" {
		t.Errorf("tie must keep roster order, got %s then %s", ranked[0].ID, ranked[1].ID)
	}
}

func TestFilterByCategory(t *testing.T) {
	roster := rosterFixture()

	beginners := FilterByCategory(roster, models.TierBeginner)
	if len(beginners) != 2 {
		t.Errorf("expected 2 beginners (levels 2 and 3), got %d", len(beginners))
	}

	intermediates := FilterByCategory(roster, models.TierIntermediate)
	if len(intermediates) != 1 || intermediates[0].ID != "u-high" {
		t.Errorf("expected only u-high in intermediate, got %v", intermediates)
	}

	// Empty category means all participants; non-participants stay out
	// either way.
	all := FilterByCategory(roster, "")
	if len(all) != 3 {
		t.Errorf("expected 3 participants with empty category, got %d", len(all))
	}
	advanced := FilterByCategory(roster, models.TierAdvanced)
	if len(advanced) != 0 {
		t.Errorf("non-participants must never appear, got %v", advanced)
	}
}

func TestNewSelector_DropsUnknownIDs(t *testing.T) {
	roster := rosterFixture()
	s := NewSelector(TierExactLevel, []string{"u-gone", "u-low", "u-mid", "u-high"}, roster)

	ids := s.SelectedIDs()
	if len(ids) != 2 || ids[0] != "u-low" || ids[1] != "u-mid" {
		t.Errorf("expected [u-low u-mid], got %v", ids)
	}
}

func TestSelectorToggle_Deselects(t *testing.T) {
	roster := rosterFixture()
	s := NewSelector(TierCategory, []string{"u-low", "u-mid"}, roster)

	if err := s.Toggle("u-low", roster); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids := s.SelectedIDs()
	if len(ids) != 1 || ids[0] != "u-mid" {
		t.Errorf("expected [u-mid] after deselect, got %v", ids)
	}
}

func TestSelectorToggle_EvictsOldest(t *testing.T) {
	roster := []models.UserProfile{
		{ID: "a", Level: 4, ParticipateRanking: true},
		{ID: "b", Level: 4, ParticipateRanking: true},
		{ID: "c", Level: 4, ParticipateRanking: true},
	}
	s := NewSelector(TierExactLevel, []string{"a", "b"}, roster)

	if err := s.Toggle("c", roster); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids := s.SelectedIDs()
	if len(ids) != 2 || ids[0] != "b" || ids[1] != "c" {
		t.Errorf("expected oldest evicted, [b c], got %v", ids)
	}
}

func TestSelectorToggle_IncompatibleTier(t *testing.T) {
	roster := rosterFixture()
	s := NewSelector(TierExactLevel, []string{"u-low"}, roster)

	err := s.Toggle("u-high", roster)
	var tierErr *apperrors.IncompatibleTierError
	if !errors.As(err, &tierErr) {
		t.Fatalf("expected IncompatibleTierError, got %v", err)
	}
	// The rejected candidate is not added.
	ids := s.SelectedIDs()
	if len(ids) != 1 || ids[0] != "u-low" {
		t.Errorf("selection must be unchanged, got %v", ids)
	}
}

func TestSelectorToggle_EvictionSurvivesRejection(t *testing.T) {
	roster := []models.UserProfile{
		{ID: "a", Level: 4, ParticipateRanking: true},
		{ID: "b", Level: 4, ParticipateRanking: true},
		{ID: "other", Level: 9, ParticipateRanking: true},
	}
	s := NewSelector(TierExactLevel, []string{"a", "b"}, roster)

	err := s.Toggle("other", roster)
	var tierErr *apperrors.IncompatibleTierError
	if !errors.As(err, &tierErr) {
		t.Fatalf("expected IncompatibleTierError, got %v", err)
	}
	// The oldest entry was already evicted before the tier check; the
	// selection shrinks to one even though the toggle failed.
	ids := s.SelectedIDs()
	if len(ids) != 1 || ids[0] != "b" {
		t.Errorf("expected [b] after eviction, got %v", ids)
	}
}

func TestSelectorToggle_UnknownUser(t *testing.T) {
	roster := rosterFixture()
	s := NewSelector(TierExactLevel, nil, roster)

	err := s.Toggle("u-gone", roster)
	var nfe *apperrors.NotFoundError
	if !errors.As(err, &nfe) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestSelector_CategoryRuleAllowsDifferentLevels(t *testing.T) {
	roster := []models.UserProfile{
		{ID: "a", Level: 4, ParticipateRanking: true},
		{ID: "b", Level: 7, ParticipateRanking: true},
	}
	s := NewSelector(TierCategory, []string{"a"}, roster)

	if err := s.Toggle("b", roster); err != nil {
		t.Fatalf("levels 4 and 7 share the intermediate tier: %v", err)
	}
	if !s.CanCompare() {
		t.Error("expected selection to be comparable")
	}
}

func TestCompare_Verdict(t *testing.T) {
	a := models.UserProfile{ID: "a", Name: "Ana", MoneySaved: 3000}
	b := models.UserProfile{ID: "b", Name: "Bia", MoneySaved: 1800}

	result := Compare(a, b)
	if result.BetterSaverID != "a" || result.BetterSaverName != "Ana" {
		t.Errorf("expected Ana as better saver, got %s", result.BetterSaverName)
	}
	if result.SavedDifference != 1200 {
		t.Errorf("expected difference 1200, got %.2f", result.SavedDifference)
	}

	// The verdict is symmetric.
	reversed := Compare(b, a)
	if reversed.BetterSaverID != "a" || reversed.SavedDifference != 1200 {
		t.Errorf("reversed order must name the same winner, got %+v", reversed)
	}
}

func TestCompare_TieNamesNobody(t *testing.T) {
	a := models.UserProfile{ID: "a", MoneySaved: 2000}
	b := models.UserProfile{ID: "b", MoneySaved: 2000}

	result := Compare(a, b)
	if result.BetterSaverID != "" || result.BetterSaverName != "" {
		t.Errorf("exact tie must name nobody, got %+v", result)
	}
	if result.SavedDifference != 0 {
		t.Errorf("expected zero difference, got %.2f", result.SavedDifference)
	}
}
