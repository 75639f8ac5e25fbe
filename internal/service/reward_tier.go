package service

import "math"

// Reward is an xp/coin pair after tiering.
type Reward struct {
	XP    int `json:"xp"`
	Coins int `json:"coins"`
}

// QuizReward applies the quiz performance multiplier to the base reward.
// Thresholds are checked in descending order and exactly one tier applies:
// perfect ×2.0, >=90 ×1.5, passing ×1.2, below passing ×0.5. A failed quiz
// still pays a reduced reward; it only reaches zero when the base is zero.
func QuizReward(baseXP, baseCoins int, percentage, passingScore float64) Reward {
	var multiplier float64
	switch {
	case percentage == 100:
		multiplier = 2.0
	case percentage >= 90:
		multiplier = 1.5
	case percentage >= passingScore:
		multiplier = 1.2
	default:
		multiplier = 0.5
	}
	return scale(baseXP, baseCoins, multiplier)
}

// GameReward applies the game score multiplier: >=90 ×1.5, >=70 ×1.2,
// otherwise the base reward unchanged. Games have no penalty tier.
func GameReward(baseXP, baseCoins int, score float64) Reward {
	var multiplier float64
	switch {
	case score >= 90:
		multiplier = 1.5
	case score >= 70:
		multiplier = 1.2
	default:
		multiplier = 1.0
	}
	return scale(baseXP, baseCoins, multiplier)
}

func scale(xp, coins int, multiplier float64) Reward {
	return Reward{
		XP:    int(math.Floor(float64(xp) * multiplier)),
		Coins: int(math.Floor(float64(coins) * multiplier)),
	}
}

// LevelForXP derives the level from cumulative experience: one level per
// 100 XP, starting at level 1.
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return totalXP/100 + 1
}

// NextLevelXP is the cumulative XP at which the next level starts.
func NextLevelXP(totalXP int) int {
	return LevelForXP(totalXP) * 100
}
