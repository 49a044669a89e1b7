package domain

import "time"

type User struct {
	ID           string
	Email        string // unique, used as the token subject
	PasswordHash string // argon2id PHC encoded
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
