package models

import "time"

type Destination struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Country   string    `gorm:"not null;index" json:"country"`
	Rating    float64   `gorm:"default:0" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
