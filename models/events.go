// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Event subjects, relative to the configured subject prefix.
const (
	EventUserSignedUp  = "user.signed_up"
	EventUserLoggedIn  = "user.logged_in"
	EventGameCompleted = "game.completed"
)

// UserEvent is published after a signup or a login.
type UserEvent struct {
	UserID        string    `json:"userId"`
	Email         string    `json:"email"`
	CurrentStreak int       `json:"currentStreak,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// GameCompletedEvent is published after a completed game was credited.
type GameCompletedEvent struct {
	UserID         string    `json:"userId"`
	GameID         string    `json:"gameId"`
	Score          float64   `json:"score"`
	Reward         int64     `json:"reward"`
	NewShieldCoins int64     `json:"newShieldCoins"`
	OccurredAt     time.Time `json:"occurredAt"`
}
