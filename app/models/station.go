package models

import "time"

// Station is a bus pickup point students are grouped under. Each station is
// administered by at most one teacher by convention, though the store does
// not enforce that.
type Station struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StationUpdate struct {
	Name *string
}
