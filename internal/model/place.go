package model

import "time"

// FavouritePlace is a named saved location used to pre-fill new tasks.
// It has no scheduling behavior of its own.
type FavouritePlace struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:255"`
	Address   string `gorm:"size:512"`
	Latitude  float64
	Longitude float64
	Radius    float64 // meters
	CreatedAt time.Time
	UpdatedAt time.Time
}
