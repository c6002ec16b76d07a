package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2026, 5, 20, 8, 30, 0, 0, time.UTC)
	at := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name      string
		lastLogin *time.Time
		current   int
		want      int
	}{
		{name: "first login", lastLogin: nil, current: 0, want: 1},
		{name: "same day keeps streak", lastLogin: at(now.Add(-2 * time.Hour)), current: 5, want: 5},
		{name: "same day lifts zero streak", lastLogin: at(now.Add(-time.Hour)), current: 0, want: 1},
		{name: "previous day extends", lastLogin: at(time.Date(2026, 5, 19, 23, 59, 0, 0, time.UTC)), current: 2, want: 3},
		{name: "previous day early morning extends", lastLogin: at(time.Date(2026, 5, 19, 0, 0, 1, 0, time.UTC)), current: 7, want: 8},
		{name: "two days ago resets", lastLogin: at(time.Date(2026, 5, 18, 12, 0, 0, 0, time.UTC)), current: 9, want: 1},
		{name: "weeks ago resets", lastLogin: at(time.Date(2026, 4, 30, 12, 0, 0, 0, time.UTC)), current: 1, want: 1},
		{
			name:      "other time zone compared in UTC",
			lastLogin: at(time.Date(2026, 5, 20, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))),
			current:   4,
			want:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStreak(tt.lastLogin, tt.current, now))
		})
	}
}

func TestNextStreak_YearBoundary(t *testing.T) {
	last := time.Date(2025, 12, 31, 22, 0, 0, 0, time.UTC)
	now := time.Date(2026, 1, 1, 6, 0, 0, 0, time.UTC)

	assert.Equal(t, 11, NextStreak(&last, 10, now))
}
