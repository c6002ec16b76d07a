// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PlayRecord is one finished story game kept in the client's local history.
type PlayRecord struct {
	ID            int64
	PlayedAt      time.Time
	StoryScore    int
	QuizScore     int
	TotalScore    int
	Grade         string
	RewardClaimed bool
}

// LocalSession is the remembered login kept by the client between runs.
type LocalSession struct {
	UserID    string
	Email     string
	Username  string
	Token     string
	ExpiresAt time.Time
}

// Expired reports whether the session can no longer be used at now.
func (s LocalSession) Expired(now time.Time) bool {
	return s.Token == "" || !now.Before(s.ExpiresAt)
}
