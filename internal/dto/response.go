package dto

import (
	"time"

	"github.com/trailnepal/marketplace/internal/models"
)

type ErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, AvatarURL: u.AvatarURL}
}

// RecentBookingResponse is the flattened dashboard view of a booking. The
// guide block is omitted, not null, when no guide is assigned.
type RecentBookingResponse struct {
	ID             uint                 `json:"id"`
	BookingNumber  string               `json:"booking_number"`
	Customer       BookingParty         `json:"customer"`
	Destination    BookingPlace         `json:"destination"`
	Guide          *BookingParty        `json:"guide,omitempty"`
	StartDate      time.Time            `json:"start_date"`
	EndDate        time.Time            `json:"end_date"`
	DurationDays   int                  `json:"duration_days"`
	TotalTravelers int                  `json:"total_travelers"`
	TotalAmount    float64              `json:"total_amount"`
	Currency       string               `json:"currency"`
	Status         models.BookingStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
}

type BookingParty struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type BookingPlace struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
}

func ToRecentBookingResponse(b *models.Booking) RecentBookingResponse {
	resp := RecentBookingResponse{
		ID:             b.ID,
		BookingNumber:  b.BookingNumber,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		DurationDays:   b.DurationDays,
		TotalTravelers: b.TotalTravelers,
		TotalAmount:    b.TotalAmount,
		Currency:       b.Currency,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
	}
	if b.Customer != nil {
		resp.Customer = BookingParty{ID: b.Customer.ID, Name: b.Customer.Name}
	}
	if b.Destination != nil {
		resp.Destination = BookingPlace{ID: b.Destination.ID, Name: b.Destination.Name, Country: b.Destination.Country}
	}
	if b.Guide != nil {
		resp.Guide = &BookingParty{ID: b.Guide.ID, Name: b.Guide.Name}
	}
	return resp
}

// ReviewDetailResponse is the shaped single-review projection: derived
// type/status, joined entity name, and nullable trip/response blocks.
type ReviewDetailResponse struct {
	ID             uint                `json:"id"`
	Type           string              `json:"type"`
	EntityName     string              `json:"entity_name"`
	Status         models.ReviewStatus `json:"status"`
	AuthorName     string              `json:"author_name"`
	Rating         float64             `json:"rating"`
	Title          string              `json:"title"`
	Content        string              `json:"content"`
	Date           time.Time           `json:"date"`
	Verified       bool                `json:"verified"`
	Tags           []string            `json:"tags"`
	Photos         []string            `json:"photos"`
	HelpfulCount   int                 `json:"helpful_count"`
	UnhelpfulCount int                 `json:"unhelpful_count"`
	Trip           *ReviewTrip         `json:"trip"`
	Response       *ReviewResponse     `json:"response"`
}

type ReviewTrip struct {
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Type      string     `json:"type,omitempty"`
}

type ReviewResponse struct {
	Content string     `json:"content"`
	Author  string     `json:"author,omitempty"`
	Date    *time.Time `json:"date,omitempty"`
}

func ToReviewDetailResponse(r *models.Review) ReviewDetailResponse {
	resp := ReviewDetailResponse{
		ID:             r.ID,
		Type:           r.TargetType(),
		Status:         r.DerivedStatus(),
		Rating:         r.Rating,
		Title:          r.Title,
		Content:        r.Content,
		Date:           r.Date,
		Verified:       r.Verified,
		Tags:           r.Tags,
		Photos:         r.Photos,
		HelpfulCount:   r.HelpfulCount,
		UnhelpfulCount: r.UnhelpfulCount,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if resp.Photos == nil {
		resp.Photos = []string{}
	}

	if r.Author != nil {
		resp.AuthorName = r.Author.Name
	}

	switch resp.Type {
	case "guide":
		resp.EntityName = "Unknown Guide"
		if r.Guide != nil {
			resp.EntityName = r.Guide.Name
		}
	default:
		resp.EntityName = "Unknown Destination"
		if r.Destination != nil {
			resp.EntityName = r.Destination.Name
		}
	}

	if r.TripStartDate != nil {
		resp.Trip = &ReviewTrip{StartDate: *r.TripStartDate, EndDate: r.TripEndDate, Type: r.TripType}
	}
	if r.ResponseContent != nil {
		resp.Response = &ReviewResponse{Content: *r.ResponseContent, Author: r.ResponseAuthor, Date: r.ResponseDate}
	}
	return resp
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
