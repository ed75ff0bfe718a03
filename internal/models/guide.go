package models

import (
	"time"

	"github.com/lib/pq"
)

type GuideAvailability string

const (
	GuideAvailable          GuideAvailability = "available"
	GuidePartiallyAvailable GuideAvailability = "partially_available"
	GuideUnavailable        GuideAvailability = "unavailable"
)

type Guide struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	Name         string            `gorm:"not null" json:"name"`
	Languages    pq.StringArray    `gorm:"type:text[]" json:"languages"`
	Specialties  pq.StringArray    `gorm:"type:text[]" json:"specialties"`
	Rating       float64           `gorm:"default:0" json:"rating"`
	ReviewCount  int               `gorm:"default:0" json:"review_count"`
	HourlyRate   float64           `json:"hourly_rate"`
	Availability GuideAvailability `gorm:"type:varchar(30);not null;default:'available'" json:"availability"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
