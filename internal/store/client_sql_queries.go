// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSession = `
		INSERT INTO sessions (id, user_id, email, username, token, expires_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			user_id    = excluded.user_id,
			email      = excluded.email,
			username   = excluded.username,
			token      = excluded.token,
			expires_at = excluded.expires_at;`

	getSession = `
		SELECT user_id, email, username, token, expires_at
		FROM sessions
		WHERE id = 1;`

	deleteSession = `DELETE FROM sessions WHERE id = 1;`

	savePlayRecord = `
		INSERT INTO play_history (played_at, story_score, quiz_score, total_score, grade, reward_claimed)
		VALUES ($1, $2, $3, $4, $5, $6);`

	markRewardClaimed = `
		UPDATE play_history
		SET reward_claimed = 1
		WHERE id = $1;`

	recentPlayRecords = `
		SELECT id, played_at, story_score, quiz_score, total_score, grade, reward_claimed
		FROM play_history
		ORDER BY played_at DESC, id DESC
		LIMIT $1;`
)
