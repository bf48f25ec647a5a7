// models/tier.go
package models

// TierCategory is the coarse level grouping used by the ranking surface
// to gate fair comparisons.
type TierCategory string

const (
	TierBeginner     TierCategory = "beginner"     // levels 1-3
	TierIntermediate TierCategory = "intermediate" // levels 4-7
	TierAdvanced     TierCategory = "advanced"     // levels 8-10
	TierExpert       TierCategory = "expert"       // levels 11+
)

// CategoryForLevel maps a level to its tier category.
func CategoryForLevel(level int) TierCategory {
	switch {
	case level <= 3:
		return TierBeginner
	case level <= 7:
		return TierIntermediate
	case level <= 10:
		return TierAdvanced
	default:
		return TierExpert
	}
}

// CategoryName is the display name for a tier category.
func CategoryName(c TierCategory) string {
	switch c {
	case TierBeginner:
		return "Beginner"
	case TierIntermediate:
		return "Intermediate"
	case TierAdvanced:
		return "Advanced"
	case TierExpert:
		return "Expert"
	default:
		return string(c)
	}
}

// RankClass returns the badge class for a 1-based rank position. The top
// three positions get distinct badges; everyone else shares the fourth.
func RankClass(position int) string {
	switch position {
	case 1:
		return "rank-1"
	case 2:
		return "rank-2"
	case 3:
		return "rank-3"
	default:
		return "rank-other"
	}
}
