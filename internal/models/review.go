package models

import (
	"time"

	"github.com/lib/pq"
)

type ReviewStatus string

const (
	ReviewApproved ReviewStatus = "approved"
	ReviewFlagged  ReviewStatus = "flagged"
	ReviewPending  ReviewStatus = "pending"
)

// Review targets exactly one of Guide or Destination.
type Review struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	AuthorID      uint           `gorm:"not null;index" json:"author_id"`
	GuideID       *uint          `gorm:"index" json:"guide_id,omitempty"`
	DestinationID *uint          `gorm:"index" json:"destination_id,omitempty"`
	Rating        float64        `gorm:"not null" json:"rating"`
	Title         string         `json:"title"`
	Content       string         `gorm:"type:text" json:"content"`
	Date          time.Time      `json:"date"`
	Verified      bool           `gorm:"default:false" json:"verified"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	Photos        pq.StringArray `gorm:"type:text[]" json:"photos"`
	HelpfulCount   int            `gorm:"default:0" json:"helpful_count"`
	UnhelpfulCount int            `gorm:"default:0" json:"unhelpful_count"`

	// Trip details, anchored on TripStartDate.
	TripStartDate *time.Time `gorm:"type:date" json:"trip_start_date,omitempty"`
	TripEndDate   *time.Time `gorm:"type:date" json:"trip_end_date,omitempty"`
	TripType      string     `json:"trip_type,omitempty"`

	// Owner/operator response, anchored on ResponseContent.
	ResponseContent *string    `gorm:"type:text" json:"response_content,omitempty"`
	ResponseAuthor  string     `json:"response_author,omitempty"`
	ResponseDate    *time.Time `json:"response_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author      *User        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Guide       *Guide       `gorm:"foreignKey:GuideID" json:"guide,omitempty"`
	Destination *Destination `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`
}

// TargetType reports which entity the review is attached to.
func (r *Review) TargetType() string {
	if r.GuideID != nil {
		return "guide"
	}
	return "destination"
}

// DerivedStatus applies the moderation precedence: a verified review is
// approved no matter what it is tagged with, a "flagged" tag flags it,
// anything else is still pending.
func (r *Review) DerivedStatus() ReviewStatus {
	if r.Verified {
		return ReviewApproved
	}
	for _, tag := range r.Tags {
		if tag == "flagged" {
			return ReviewFlagged
		}
	}
	return ReviewPending
}
