package models

import "testing"

func TestCategoryForLevel_Boundaries(t *testing.T) {
	tests := []struct {
		level    int
		expected TierCategory
	}{
		{1, TierBeginner},
		{3, TierBeginner},
		{4, TierIntermediate},
		{7, TierIntermediate},
		{8, TierAdvanced},
		{10, TierAdvanced},
		{11, TierExpert},
		{42, TierExpert},
	}
	for _, tt := range tests {
		if got := CategoryForLevel(tt.level); got != tt.expected {
			t.Errorf("level %d: expected %s, got %s", tt.level, tt.expected, got)
		}
	}
}

func TestRankClass(t *testing.T) {
	tests := []struct {
		position int
		expected string
	}{
		{1, "rank-1"},
		{2, "rank-2"},
		{3, "rank-3"},
		{4, "rank-other"},
		{100, "rank-other"},
	}
	for _, tt := range tests {
		if got := RankClass(tt.position); got != tt.expected {
			t.Errorf("position %d: expected %s, got %s", tt.position, tt.expected, got)
		}
	}
}
