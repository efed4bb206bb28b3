package entity

import "time"

// User is an account row. Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser is the insert payload; the caller supplies the snowflake ID and hash.
type NewUser struct {
	ID       int64
	Name     string
	Email    string
	Password string
}
