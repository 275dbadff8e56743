package models

import "time"

type User struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role" validate:"required,oneof=ADMIN TEACHER"`
	StationID *string   `json:"stationId,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserUpdate enumerates the mutable fields of a user. Nil means unchanged.
type UserUpdate struct {
	Name      *string
	Email     *string
	Role      *Role
	StationID *string
	// ClearStation removes the station assignment; takes precedence over StationID.
	ClearStation bool
	Password     *string
	IsActive     *bool
}
