package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizRewardTiers(t *testing.T) {
	// Base reward 20 XP / 10 coins, passing score 60.
	tests := []struct {
		percentage float64
		want       Reward
	}{
		{100, Reward{XP: 40, Coins: 20}},
		{99.99, Reward{XP: 30, Coins: 15}},
		{92, Reward{XP: 30, Coins: 15}},
		{90, Reward{XP: 30, Coins: 15}},
		{89.99, Reward{XP: 24, Coins: 12}},
		{65, Reward{XP: 24, Coins: 12}},
		{60, Reward{XP: 24, Coins: 12}},
		{59.99, Reward{XP: 10, Coins: 5}},
		{40, Reward{XP: 10, Coins: 5}},
		{0, Reward{XP: 10, Coins: 5}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.2f", tt.percentage), func(t *testing.T) {
			assert.Equal(t, tt.want, QuizReward(20, 10, tt.percentage, 60))
		})
	}
}

func TestQuizRewardRespectsPassingScore(t *testing.T) {
	// Passing 80: a 75 is below passing even though it clears the default 60.
	assert.Equal(t, Reward{XP: 10, Coins: 5}, QuizReward(20, 10, 75, 80))
	assert.Equal(t, Reward{XP: 24, Coins: 12}, QuizReward(20, 10, 80, 80))
}

func TestQuizRewardFloorsFractions(t *testing.T) {
	// 15 * 1.5 = 22.5 and 8 * 1.5 = 12.0; fractions always round down.
	assert.Equal(t, Reward{XP: 22, Coins: 12}, QuizReward(15, 8, 95, 60))
	// 15 * 0.5 = 7.5, 8 * 0.5 = 4.0.
	assert.Equal(t, Reward{XP: 7, Coins: 4}, QuizReward(15, 8, 10, 60))
}

func TestQuizRewardZeroBaseStaysZero(t *testing.T) {
	assert.Equal(t, Reward{}, QuizReward(0, 0, 100, 60))
	assert.Equal(t, Reward{}, QuizReward(0, 0, 10, 60))
}

func TestGameRewardTiers(t *testing.T) {
	tests := []struct {
		score float64
		want  Reward
	}{
		{100, Reward{XP: 15, Coins: 7}},
		{90, Reward{XP: 15, Coins: 7}},
		{89.5, Reward{XP: 12, Coins: 6}},
		{70, Reward{XP: 12, Coins: 6}},
		{69.9, Reward{XP: 10, Coins: 5}},
		{0, Reward{XP: 10, Coins: 5}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.1f", tt.score), func(t *testing.T) {
			assert.Equal(t, tt.want, GameReward(10, 5, tt.score))
		})
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{200, 3},
		{980, 10},
		{1010, 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForXP(tt.xp), "xp=%d", tt.xp)
	}
}

func TestNextLevelXP(t *testing.T) {
	assert.Equal(t, 100, NextLevelXP(0))
	assert.Equal(t, 100, NextLevelXP(99))
	assert.Equal(t, 200, NextLevelXP(100))
	assert.Equal(t, 1100, NextLevelXP(1010))
}
