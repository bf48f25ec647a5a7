// database/seed.go - Mock roster seed
package database

import (
	"encoding/json"
	"log"
	"time"

	"financequest/models"
)

// SeedRoster inserts the demo participants the leaderboard ships with.
// Each seed is keyed by a fixed id, so reruns are no-ops.
func SeedRoster() {
	store := GetStore()

	for _, p := range seedProfiles() {
		existing, err := store.ReadOne(p.ID)
		if err != nil {
			log.Printf("⚠️ Seed check failed for %s: %v", p.ID, err)
			continue
		}
		if existing != nil {
			continue
		}

		doc, err := json.Marshal(p)
		if err != nil {
			log.Printf("⚠️ Seed encode failed for %s: %v", p.ID, err)
			continue
		}
		rec := ProfileRecord{UserID: p.ID, Doc: doc}
		if err := GetDB().Create(&rec).Error; err != nil {
			log.Printf("⚠️ Seed insert failed for %s: %v", p.ID, err)
			continue
		}
		log.Printf("🌱 Seeded roster profile %s (%s)", p.ID, p.Name)
	}
}

func seedProfiles() []models.UserProfile {
	created := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)

	return []models.UserProfile{
		{
			ID: "user-seed-ana", Name: "Ana Paula Silva", Avatar: "A",
			MoneySaved: 15750, GoalAmount: 20000,
			XP: 8750, Level: 9, XPToNextLevel: 9000,
			Investments: []models.Investment{
				{ID: "inv-seed-ana-1", Date: "2025-01-10", Amount: 8500, Description: "Index fund"},
				{ID: "inv-seed-ana-2", Date: "2025-03-02", Amount: 4250, Description: "Treasury bonds"},
				{ID: "inv-seed-ana-3", Date: "2025-05-18", Amount: 3000, Description: "Emergency fund top-up"},
			},
			CompletedGoals:     []string{"goal-1", "goal-3", "goal-4"},
			CustomGoals:        []models.Goal{},
			Achievements:       []string{"🏆 Expert saver", "🗓️ 30-day streak"},
			ParticipateRanking: true,
			CreatedAt:          created, LastUpdate: created,
		},
		{
			ID: "user-seed-carlos", Name: "Carlos Eduardo Lima", Avatar: "C",
			MoneySaved: 12340, GoalAmount: 18000,
			XP: 7200, Level: 8, XPToNextLevel: 8000,
			Investments: []models.Investment{
				{ID: "inv-seed-carlos-1", Date: "2025-02-01", Amount: 5200, Description: "Stocks"},
				{ID: "inv-seed-carlos-2", Date: "2025-04-12", Amount: 4140, Description: "Savings account"},
				{ID: "inv-seed-carlos-3", Date: "2025-06-20", Amount: 3000, Description: "Real estate fund"},
			},
			CompletedGoals:     []string{"goal-1", "goal-2"},
			CustomGoals:        []models.Goal{},
			Achievements:       []string{"💪 Disciplined"},
			ParticipateRanking: true,
			CreatedAt:          created, LastUpdate: created,
		},
		{
			ID: "user-seed-beatriz", Name: "Beatriz Santos", Avatar: "B",
			MoneySaved: 11580, GoalAmount: 15000,
			XP: 6890, Level: 7, XPToNextLevel: 7000,
			Investments: []models.Investment{
				{ID: "inv-seed-beatriz-1", Date: "2025-01-25", Amount: 4100, Description: "Index fund"},
				{ID: "inv-seed-beatriz-2", Date: "2025-03-30", Amount: 4480, Description: "Treasury bonds"},
				{ID: "inv-seed-beatriz-3", Date: "2025-07-05", Amount: 3000, Description: "Savings account"},
			},
			CompletedGoals:     []string{"goal-2", "goal-3"},
			CustomGoals:        []models.Goal{},
			Achievements:       []string{"📝 Planner"},
			ParticipateRanking: true,
			CreatedAt:          created, LastUpdate: created,
		},
		{
			ID: "user-seed-diego", Name: "Diego Oliveira Costa", Avatar: "D",
			MoneySaved: 9240, GoalAmount: 12000,
			XP: 5420, Level: 6, XPToNextLevel: 6000,
			Investments: []models.Investment{
				{ID: "inv-seed-diego-1", Date: "2025-02-14", Amount: 5240, Description: "Stocks"},
				{ID: "inv-seed-diego-2", Date: "2025-05-01", Amount: 4000, Description: "Savings account"},
			},
			CompletedGoals:     []string{"goal-1"},
			CustomGoals:        []models.Goal{},
			Achievements:       []string{"🌱 Starting out"},
			ParticipateRanking: true,
			CreatedAt:          created, LastUpdate: created,
		},
	}
}
