// Package model holds the rows the repositories read and the payloads they
// accept. Field names follow the column names.
package model

import "time"

// User is a person who creates events and makes bookings.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      *string   `json:"name" db:"name"`
	AvatarURL *string   `json:"avatar_url" db:"avatar_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateUserParams always inserts every column; missing fields become NULL.
type CreateUserParams struct {
	Email     *string `json:"email"`
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

// UpdateUserParams lists the user columns that may be changed.
type UpdateUserParams struct {
	Email     Optional[string] `json:"email"`
	Name      Optional[string] `json:"name"`
	AvatarURL Optional[string] `json:"avatar_url"`
}
