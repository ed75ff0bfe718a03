package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/trailnepal/marketplace/internal/models"
	"github.com/trailnepal/marketplace/internal/repository"
	"gorm.io/gorm"
)

// CreateBookingInput is the payload for a new booking. The customer comes
// from the session, never from the body.
type CreateBookingInput struct {
	DestinationID  uint    `json:"destination_id"`
	GuideID        *uint   `json:"guide_id,omitempty"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	TotalTravelers int     `json:"total_travelers"`
	TotalAmount    float64 `json:"total_amount"`
	Currency       string  `json:"currency"`
}

type BookingService interface {
	Create(ctx context.Context, customerID uint, input CreateBookingInput) (*models.Booking, error)
	Recent(ctx context.Context, limit int) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo     repository.BookingRepository
	destinationRepo repository.DestinationRepository
	guideRepo       repository.GuideRepository
}

func NewBookingService(bookingRepo repository.BookingRepository, destinationRepo repository.DestinationRepository, guideRepo repository.GuideRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo, destinationRepo: destinationRepo, guideRepo: guideRepo}
}

// newBookingNumber formats B-YYYYMMDD-XXXX with a random 4-digit suffix.
// Collisions are possible and accepted; there is no retry.
func newBookingNumber(now time.Time) string {
	return fmt.Sprintf("B-%s-%04d", now.Format("20060102"), rand.Intn(10000))
}

func (s *bookingService) Create(ctx context.Context, customerID uint, input CreateBookingInput) (*models.Booking, error) {
	fields := fieldErrors{}
	if input.DestinationID == 0 {
		fields["destination_id"] = "destination_id is required"
	}
	if input.TotalTravelers < 1 {
		fields["total_travelers"] = "total_travelers must be at least 1"
	}
	if input.TotalAmount < 0 {
		fields["total_amount"] = "total_amount must not be negative"
	}

	start, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		fields["start_date"] = "start_date must be a YYYY-MM-DD date"
	}
	end, err := time.Parse(dateLayout, input.EndDate)
	if err != nil {
		fields["end_date"] = "end_date must be a YYYY-MM-DD date"
	}
	if _, ok := fields["start_date"]; !ok {
		if _, ok := fields["end_date"]; !ok && end.Before(start) {
			fields["end_date"] = "end_date must not be before start_date"
		}
	}

	if err := fields.err(); err != nil {
		return nil, err
	}

	if _, err := s.destinationRepo.FindByID(ctx, input.DestinationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	if input.GuideID != nil {
		if _, err := s.guideRepo.FindByID(ctx, *input.GuideID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrGuideNotFound
			}
			return nil, err
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "USD"
	}

	booking := &models.Booking{
		BookingNumber:  newBookingNumber(time.Now()),
		CustomerID:     customerID,
		DestinationID:  input.DestinationID,
		GuideID:        input.GuideID,
		StartDate:      start,
		EndDate:        end,
		DurationDays:   int(end.Sub(start).Hours() / 24),
		TotalTravelers: input.TotalTravelers,
		TotalAmount:    input.TotalAmount,
		Currency:       currency,
		Status:         models.BookingPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Recent(ctx context.Context, limit int) ([]models.Booking, error) {
	if limit <= 0 {
		return nil, &ValidationError{Fields: map[string]string{"limit": "limit must be a positive integer"}}
	}
	return s.bookingRepo.FindRecent(ctx, limit)
}
