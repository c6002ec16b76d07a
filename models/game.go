// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GameCompletion is the body of POST /game/complete.
//
// Score is a pointer so that an absent score can be told apart from zero.
type GameCompletion struct {
	GameID string   `json:"gameId"`
	Score  *float64 `json:"score"`
}

// GameReward is the outcome of crediting a completed game.
type GameReward struct {
	// NewShieldCoins is the balance after the reward was added.
	NewShieldCoins int64 `json:"newShieldCoins"`

	// CoinReward is floor(score / 2).
	CoinReward int64 `json:"reward"`

	// XPEarned equals the reported score. It is informational only.
	XPEarned float64 `json:"xpEarned"`
}

// GameRewardResponse is the JSON body of a successful POST /game/complete.
type GameRewardResponse struct {
	Success bool `json:"success"`
	GameReward
}

// LeaderboardEntry is the public projection of a user on the leaderboard.
type LeaderboardEntry struct {
	Username     string `json:"username" bson:"username"`
	ShieldCoins  int64  `json:"shieldCoins" bson:"shield_coins"`
	CurrentLevel int    `json:"currentLevel" bson:"current_level"`
}

// LeaderboardResponse is the JSON body of GET /leaderboard.
type LeaderboardResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}
