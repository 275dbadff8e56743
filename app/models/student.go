package models

import "time"

type Student struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName" validate:"required"`
	StationID string    `json:"stationId" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StudentUpdate struct {
	FullName  *string
	StationID *string
}
