package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2id encoded
	Role         string // role name, resolved against the roles table per check
	IsSuperuser  bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultRole is assigned when an account carries no explicit role.
const DefaultRole = "user"
