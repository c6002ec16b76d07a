package service

import "time"

// NextStreak applies the daily login rule. Logging in again on the same UTC
// day keeps the streak (at least 1), logging in on the following day extends
// it, and anything else, including the first login, starts over at 1.
func NextStreak(lastLogin *time.Time, current int, now time.Time) int {
	if lastLogin == nil {
		return 1
	}

	last := truncateToDay(lastLogin.UTC())
	today := truncateToDay(now.UTC())

	switch {
	case last.Equal(today):
		return max(current, 1)
	case last.AddDate(0, 0, 1).Equal(today):
		return current + 1
	default:
		return 1
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
