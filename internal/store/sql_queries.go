package store

// Prepared SQL for the users table. Numbered placeholders are understood by
// both supported drivers. Token and failure-event queries are built with
// squirrel in their repositories because their shape varies (table per token
// kind, windowed predicates).
const (
	createUser = `INSERT INTO users (login, password_hash, state)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, state, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, state, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, password_hash, state, created_at
    FROM users
    WHERE user_id = $1;`

	updatePasswordHash = `UPDATE users
    SET password_hash = $2
    WHERE user_id = $1;`

	markUserActive = `UPDATE users
    SET state = 'active'
    WHERE user_id = $1 AND state = 'pending_activation';`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`
)
