package models

import "time"

// User is a registered account. PasswordSalt and PasswordHash hold the
// hex-encoded PBKDF2 material and must never leave the server in API
// responses.
type User struct {
	ID           string
	Email        string
	Name         *string
	PasswordSalt string
	PasswordHash string
	CreatedAt    time.Time
}
