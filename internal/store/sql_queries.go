package store

import (
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `id, username, email, password_hash, current_level, shield_coins, current_streak, last_login, created_at, updated_at`

const (
	createUser = `INSERT INTO users (id, username, email, password_hash, current_level, shield_coins, current_streak, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	updateLoginActivity = `UPDATE users
    SET last_login = $2, current_streak = $3, updated_at = $2
    WHERE id = $1
    RETURNING ` + userColumns + `;`

	addShieldCoins = `UPDATE users
    SET shield_coins = shield_coins + $2, updated_at = now()
    WHERE id = $1
    RETURNING shield_coins;`
)

// buildLeaderboardQuery selects the public projection of the top users by
// shield coins. Ties keep the storage order.
func buildLeaderboardQuery(limit int) (string, []any, error) {
	return sq.Select("username", "shield_coins", "current_level").
		From("users").
		OrderBy("shield_coins DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
