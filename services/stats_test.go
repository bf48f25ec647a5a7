package services

import (
	"testing"

	"financequest/models"
)

func TestComputeGlobalStats(t *testing.T) {
	roster := []models.UserProfile{
		{XP: 3000, MoneySaved: 1500},
		{XP: 1000, MoneySaved: 500},
		{XP: 2000, MoneySaved: 0, ParticipateRanking: false},
	}

	stats := ComputeGlobalStats(roster)

	if stats.Participants != 3 {
		t.Errorf("expected 3 participants, got %d", stats.Participants)
	}
	if stats.TotalSaved != 2000 {
		t.Errorf("expected total saved 2000, got %.2f", stats.TotalSaved)
	}
	// (3000+1000+2000) / 3 users / 1000 per level
	if stats.AverageLevel != 2.0 {
		t.Errorf("expected average level 2.0, got %.2f", stats.AverageLevel)
	}
}

func TestComputeGlobalStats_EmptyRoster(t *testing.T) {
	stats := ComputeGlobalStats(nil)
	if stats.Participants != 0 || stats.TotalSaved != 0 || stats.AverageLevel != 0 {
		t.Errorf("expected zero stats for empty roster, got %+v", stats)
	}
}
