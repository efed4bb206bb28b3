package db

const (
	queryGetUserByEmail = `
SELECT id, name, email, password, created_at, updated_at
FROM users
WHERE email = $1`

	queryGetUserByID = `
SELECT id, name, email, password, created_at, updated_at
FROM users
WHERE id = $1`

	queryCreateUser = `
INSERT INTO users (id, name, email, password)
VALUES ($1, $2, $3, $4)
RETURNING id, name, email, password, created_at, updated_at`

	queryUpdateUserPassword = `
UPDATE users
SET password = $2, updated_at = now()
WHERE email = $1`
)
