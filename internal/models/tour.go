package models

import "time"

type TourStatus string

const (
	TourConfirmed TourStatus = "confirmed"
	TourPending   TourStatus = "pending"
	TourCompleted TourStatus = "completed"
	TourCancelled TourStatus = "cancelled"
)

func (s TourStatus) Valid() bool {
	switch s {
	case TourConfirmed, TourPending, TourCompleted, TourCancelled:
		return true
	}
	return false
}

type TourDifficulty string

const (
	DifficultyEasy        TourDifficulty = "easy"
	DifficultyModerate    TourDifficulty = "moderate"
	DifficultyChallenging TourDifficulty = "challenging"
)

func (d TourDifficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyChallenging:
		return true
	}
	return false
}

// Tour is a scheduled guide assignment to a destination within a date range.
type Tour struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	GuideID         uint           `gorm:"not null;index" json:"guide_id"`
	Destination     string         `gorm:"not null" json:"destination"`
	Location        string         `gorm:"not null" json:"location"`
	StartDate       time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate         time.Time      `gorm:"type:date;not null" json:"end_date"`
	Description     string         `gorm:"type:text" json:"description"`
	MaxParticipants int            `gorm:"not null" json:"max_participants"`
	Price           float64        `gorm:"not null" json:"price"`
	Status          TourStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Difficulty      TourDifficulty `gorm:"type:varchar(20);not null" json:"difficulty"`
	Itinerary       string         `gorm:"type:text" json:"itinerary"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	Guide *Guide `gorm:"foreignKey:GuideID" json:"guide,omitempty"`
}
