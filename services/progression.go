// services/progression.go
package services

import (
	"math"
	"strings"
	"time"

	"financequest/apperrors"
	"financequest/models"

	"github.com/google/uuid"
)

// Progression engine. Every operation takes the current profile and
// returns the next one without touching storage; the caller persists the
// result through the profile store.

const (
	xpPerLevelStep   = 1000
	xpPerMoneyUnit   = 10 // 1 XP per R$ 10 invested
	initialDepositXP = 100
)

// LevelFor derives the level for a cumulative XP total, walking the
// level*1000 thresholds upward from startingLevel. Deriving from level 1
// and deriving incrementally from a prior (level, xp) pair agree, so the
// function is safe to re-run on every mutation.
func LevelFor(xp, startingLevel int) int {
	level := startingLevel
	if level < 1 {
		level = 1
	}
	for xp >= level*xpPerLevelStep {
		level++
	}
	return level
}

// GoalProgress returns how far the profile is toward its savings goal as
// a percentage clamped to [0, 100]. A missing goal amount yields 0.
func GoalProgress(p models.UserProfile) float64 {
	if p.GoalAmount <= 0 {
		return 0
	}
	progress := p.MoneySaved / p.GoalAmount * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// XPProgress returns progress toward the next level as a percentage
// clamped to [0, 100], for display bars.
func XPProgress(p models.UserProfile) float64 {
	if p.XPToNextLevel <= 0 {
		return 0
	}
	progress := float64(p.XP) / float64(p.XPToNextLevel) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// CreateProfile builds the starter profile for a first-time user. An
// initial deposit is optional; a positive one seeds the first investment
// and grants the starting XP bonus.
func CreateProfile(id, name string, goalAmount, initialDeposit float64, participateRanking bool) (models.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.UserProfile{}, apperrors.NewValidation("name is required")
	}
	if goalAmount <= 0 {
		return models.UserProfile{}, apperrors.NewValidation("goal amount must be positive")
	}
	if initialDeposit < 0 {
		initialDeposit = 0
	}

	now := time.Now().UTC()
	xp := 0
	if initialDeposit > 0 {
		xp = initialDepositXP
	}
	level := LevelFor(xp, 1)

	p := models.UserProfile{
		ID:                 id,
		Name:               name,
		Avatar:             avatarFor(name),
		GoalAmount:         goalAmount,
		XP:                 xp,
		Level:              level,
		XPToNextLevel:      level * xpPerLevelStep,
		Investments:        []models.Investment{},
		CompletedGoals:     []string{},
		CustomGoals:        []models.Goal{},
		Achievements:       []string{"🌱 Starting out"},
		ParticipateRanking: participateRanking,
		CreatedAt:          now,
		LastUpdate:         now,
	}

	if initialDeposit > 0 {
		p.Investments = append(p.Investments, models.Investment{
			ID:          newInvestmentID(),
			Date:        now.Format("2006-01-02"),
			Amount:      initialDeposit,
			Description: "Initial investment",
		})
	}
	p.MoneySaved = sumInvestments(p.Investments)

	return p, nil
}

// RecordInvestment appends a new investment and grants XP for the
// invested amount. Edits never go through here, so XP only rewards
// net-new investing activity.
func RecordInvestment(p models.UserProfile, amount float64, date, description string) (models.UserProfile, error) {
	if amount <= 0 {
		return p, apperrors.NewValidation("investment amount must be positive")
	}
	if err := validateDate(date); err != nil {
		return p, err
	}

	next := cloneProfile(p)
	next.Investments = append(next.Investments, models.Investment{
		ID:          newInvestmentID(),
		Date:        date,
		Amount:      amount,
		Description: strings.TrimSpace(description),
	})
	next.MoneySaved = sumInvestments(next.Investments)
	next.XP += int(math.Floor(amount / xpPerMoneyUnit))
	relevel(&next)
	touch(&next)
	return next, nil
}

// EditInvestment replaces the fields of an existing investment. XP and
// level are deliberately untouched: experience rewards investing, not
// valuation adjustments.
func EditInvestment(p models.UserProfile, investmentID string, amount float64, date, description string) (models.UserProfile, error) {
	if amount <= 0 {
		return p, apperrors.NewValidation("investment amount must be positive")
	}
	if err := validateDate(date); err != nil {
		return p, err
	}

	idx := p.FindInvestment(investmentID)
	if idx < 0 {
		return p, apperrors.NewNotFound("investment", investmentID)
	}

	next := cloneProfile(p)
	next.Investments[idx] = models.Investment{
		ID:          investmentID,
		Date:        date,
		Amount:      amount,
		Description: strings.TrimSpace(description),
	}
	next.MoneySaved = sumInvestments(next.Investments)
	touch(&next)
	return next, nil
}

// DeleteInvestment removes an investment. XP already granted for it is
// not reclaimed; only the money comes back out. Deleting an unknown id
// is a no-op.
func DeleteInvestment(p models.UserProfile, investmentID string) models.UserProfile {
	idx := p.FindInvestment(investmentID)
	if idx < 0 {
		return p
	}

	next := cloneProfile(p)
	next.Investments = append(next.Investments[:idx], next.Investments[idx+1:]...)
	next.MoneySaved = sumInvestments(next.Investments)
	touch(&next)
	return next
}

// CompleteGoal marks a goal as completed and grants its reward.
// Completing an already-completed goal is a no-op.
func CompleteGoal(p models.UserProfile, goalID string, xpReward int) models.UserProfile {
	if p.HasCompletedGoal(goalID) {
		return p
	}

	next := cloneProfile(p)
	next.CompletedGoals = append(next.CompletedGoals, goalID)
	next.XP += xpReward
	relevel(&next)
	touch(&next)
	return next
}

// AddCustomGoal appends a user-defined goal. It grants nothing by
// itself; XP comes from completing it later.
func AddCustomGoal(p models.UserProfile, title string, xpReward int, icon string) (models.UserProfile, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return p, apperrors.NewValidation("goal title is required")
	}
	if xpReward <= 0 {
		return p, apperrors.NewValidation("goal XP reward must be positive")
	}
	if icon = strings.TrimSpace(icon); icon == "" {
		icon = "🎯"
	}

	next := cloneProfile(p)
	next.CustomGoals = append(next.CustomGoals, models.Goal{
		ID:       newCustomGoalID(),
		Title:    title,
		XP:       xpReward,
		Icon:     icon,
		IsCustom: true,
	})
	touch(&next)
	return next, nil
}

// DeleteCustomGoal removes a custom goal if present. A completed-goal
// entry referencing it is left in place; completion (and the XP it
// granted) is not revoked.
func DeleteCustomGoal(p models.UserProfile, goalID string) models.UserProfile {
	idx := p.FindCustomGoal(goalID)
	if idx < 0 {
		return p
	}

	next := cloneProfile(p)
	next.CustomGoals = append(next.CustomGoals[:idx], next.CustomGoals[idx+1:]...)
	touch(&next)
	return next
}

// helpers

func relevel(p *models.UserProfile) {
	p.Level = LevelFor(p.XP, p.Level)
	p.XPToNextLevel = p.Level * xpPerLevelStep
}

func touch(p *models.UserProfile) {
	p.LastUpdate = time.Now().UTC()
}

func sumInvestments(investments []models.Investment) float64 {
	var total float64
	for _, inv := range investments {
		total += inv.Amount
	}
	return total
}

// avatarFor is the uppercased first letter of the name. The first rune,
// not the first byte: names like "Érica" must keep the whole character.
func avatarFor(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return ""
}

func validateDate(date string) error {
	if date == "" {
		return apperrors.NewValidation("investment date is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperrors.NewValidation("investment date must be YYYY-MM-DD")
	}
	return nil
}

func cloneProfile(p models.UserProfile) models.UserProfile {
	next := p
	next.Investments = append([]models.Investment(nil), p.Investments...)
	next.CompletedGoals = append([]string(nil), p.CompletedGoals...)
	next.CustomGoals = append([]models.Goal(nil), p.CustomGoals...)
	next.Achievements = append([]string(nil), p.Achievements...)
	return next
}

func newInvestmentID() string {
	return "inv-" + uuid.NewString()
}

func newCustomGoalID() string {
	return "cgoal-" + uuid.NewString()
}
