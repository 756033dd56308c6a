package entity

import "time"

// User representa una identidad que puede autenticarse.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca se expone hacia afuera
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
