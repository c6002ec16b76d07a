// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the player account stored in the credential store.
// PasswordHash never leaves the auth layer: it is excluded from JSON and the
// read projections below drop it entirely.
type User struct {
	// ID is the unique identifier of the user (UUIDv7 string). It doubles as
	// the Mongo document _id.
	ID string `json:"id" bson:"_id"`

	// Username is the display name. It is not guaranteed to be unique.
	Username string `json:"username" bson:"username"`

	// Email is the normalised (trimmed, lower-cased) login identifier.
	// At most one user may own a given email.
	Email string `json:"email" bson:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-" bson:"password_hash"`

	// CurrentLevel is the player level, starting at 1.
	CurrentLevel int `json:"currentLevel" bson:"current_level"`

	// ShieldCoins is the in-game currency balance. It only grows.
	ShieldCoins int64 `json:"shieldCoins" bson:"shield_coins"`

	// CurrentStreak counts consecutive days with at least one login.
	CurrentStreak int `json:"currentStreak" bson:"current_streak"`

	// LastLogin is the time of the most recent successful login, nil before
	// the first one.
	LastLogin *time.Time `json:"lastLogin" bson:"last_login,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// Summary returns the identity fields returned right after signup.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// Snapshot returns the progression snapshot returned by a successful login.
func (u User) Snapshot() UserSnapshot {
	return UserSnapshot{
		Username:      u.Username,
		Email:         u.Email,
		CurrentLevel:  u.CurrentLevel,
		ShieldCoins:   u.ShieldCoins,
		CurrentStreak: u.CurrentStreak,
		LastLogin:     u.LastLogin,
	}
}

// Profile returns the full read projection without the credential.
func (u User) Profile() Profile {
	return Profile{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		CurrentLevel:  u.CurrentLevel,
		ShieldCoins:   u.ShieldCoins,
		CurrentStreak: u.CurrentStreak,
		LastLogin:     u.LastLogin,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// UserSummary is the identity part of a user returned by signup.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserSnapshot is the progression view returned by login.
type UserSnapshot struct {
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	CurrentLevel  int        `json:"currentLevel"`
	ShieldCoins   int64      `json:"shieldCoins"`
	CurrentStreak int        `json:"currentStreak"`
	LastLogin     *time.Time `json:"lastLogin"`
}

// Profile is the read-only projection served by GET /profile.
type Profile struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	CurrentLevel  int        `json:"currentLevel"`
	ShieldCoins   int64      `json:"shieldCoins"`
	CurrentStreak int        `json:"currentStreak"`
	LastLogin     *time.Time `json:"lastLogin"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
