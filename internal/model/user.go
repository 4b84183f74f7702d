package model

import "time"

// User is an admin account stored in the `users` table.  The password
// hash never leaves the server; the field is excluded from JSON.
// Skills and home sections reference users through author_id, enforced
// only by ON DELETE CASCADE at the database level.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique email address.
//  Name         – display name.
//  PasswordHash – bcrypt hashed password.
//  Role         – role string, "user" or "admin".
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    `json:"id"`        // users.id
	Email        string    `json:"email"`     // users.email
	Name         string    `json:"name"`      // users.name
	PasswordHash string    `json:"-"`         // users.password_hash
	Role         string    `json:"role"`      // users.role
	IsActive     bool      `json:"isActive"`  // users.is_active
	CreatedAt    time.Time `json:"createdAt"` // users.created_at
	UpdatedAt    time.Time `json:"updatedAt"` // users.updated_at
}
