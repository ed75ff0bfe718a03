package models

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// B-YYYYMMDD-XXXX, generated at creation. Best-effort unique: the
	// random suffix is not retried on collision.
	BookingNumber  string        `gorm:"not null;index" json:"booking_number"`
	CustomerID     uint          `gorm:"not null;index" json:"customer_id"`
	DestinationID  uint          `gorm:"not null" json:"destination_id"`
	GuideID        *uint         `json:"guide_id,omitempty"`
	StartDate      time.Time     `gorm:"type:date;not null" json:"start_date"`
	EndDate        time.Time     `gorm:"type:date;not null" json:"end_date"`
	DurationDays   int           `json:"duration_days"`
	TotalTravelers int           `gorm:"not null" json:"total_travelers"`
	TotalAmount    float64       `gorm:"not null" json:"total_amount"`
	Currency       string        `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Status         BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	Customer    *User        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Destination *Destination `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`
	Guide       *Guide       `gorm:"foreignKey:GuideID" json:"guide,omitempty"`
}
