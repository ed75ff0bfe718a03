package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/trailnepal/marketplace/internal/models"
	"github.com/trailnepal/marketplace/internal/repository"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// CreateScheduleInput is the raw payload for a new guide schedule entry.
// Dates arrive as YYYY-MM-DD strings and are validated here.
type CreateScheduleInput struct {
	Destination     string  `json:"destination"`
	Location        string  `json:"location"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Description     string  `json:"description"`
	MaxParticipants int     `json:"max_participants"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`
	Difficulty      string  `json:"difficulty"`
	Itinerary       string  `json:"itinerary"`
}

type GuideService interface {
	List(ctx context.Context) ([]models.Guide, error)
	TopRated(ctx context.Context, limit int) ([]models.Guide, error)
	Languages(ctx context.Context) ([]string, error)
	Specialties(ctx context.Context) ([]string, error)
	ListSchedules(ctx context.Context, guideID uint, status *models.TourStatus) ([]models.Tour, error)
	CreateSchedule(ctx context.Context, guideID uint, input CreateScheduleInput) (*models.Tour, error)
	Delete(ctx context.Context, guideID uint) error
}

type guideService struct {
	guideRepo repository.GuideRepository
	tourRepo  repository.TourRepository
}

func NewGuideService(guideRepo repository.GuideRepository, tourRepo repository.TourRepository) GuideService {
	return &guideService{guideRepo: guideRepo, tourRepo: tourRepo}
}

func (s *guideService) List(ctx context.Context) ([]models.Guide, error) {
	return s.guideRepo.FindAll(ctx)
}

func (s *guideService) TopRated(ctx context.Context, limit int) ([]models.Guide, error) {
	if limit <= 0 {
		return nil, &ValidationError{Fields: map[string]string{"limit": "limit must be a positive integer"}}
	}
	return s.guideRepo.TopRated(ctx, limit)
}

func (s *guideService) Languages(ctx context.Context) ([]string, error) {
	guides, err := s.guideRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return collectDistinct(guides, func(g models.Guide) []string { return g.Languages }), nil
}

func (s *guideService) Specialties(ctx context.Context) ([]string, error) {
	guides, err := s.guideRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return collectDistinct(guides, func(g models.Guide) []string { return g.Specialties }), nil
}

// collectDistinct flattens one list per guide into a sorted set.
func collectDistinct(guides []models.Guide, pick func(models.Guide) []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, g := range guides {
		for _, v := range pick(g) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func (s *guideService) Delete(ctx context.Context, guideID uint) error {
	if _, err := s.guideRepo.FindByID(ctx, guideID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGuideNotFound
		}
		return err
	}
	return s.guideRepo.Delete(ctx, guideID)
}

func (s *guideService) ListSchedules(ctx context.Context, guideID uint, status *models.TourStatus) ([]models.Tour, error) {
	if _, err := s.guideRepo.FindByID(ctx, guideID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuideNotFound
		}
		return nil, err
	}
	return s.tourRepo.FindByGuideID(ctx, guideID, repository.TourFilter{Status: status})
}

func (s *guideService) CreateSchedule(ctx context.Context, guideID uint, input CreateScheduleInput) (*models.Tour, error) {
	if _, err := s.guideRepo.FindByID(ctx, guideID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuideNotFound
		}
		return nil, err
	}

	fields := fieldErrors{}
	if strings.TrimSpace(input.Destination) == "" {
		fields["destination"] = "destination is required"
	}
	if strings.TrimSpace(input.Location) == "" {
		fields["location"] = "location is required"
	}
	if input.MaxParticipants < 1 {
		fields["max_participants"] = "max_participants must be at least 1"
	}
	if input.Price < 0 {
		fields["price"] = "price must not be negative"
	}

	status := models.TourStatus(input.Status)
	if !status.Valid() {
		fields["status"] = "status must be one of confirmed, pending, completed, cancelled"
	}
	difficulty := models.TourDifficulty(input.Difficulty)
	if !difficulty.Valid() {
		fields["difficulty"] = "difficulty must be one of easy, moderate, challenging"
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

	tour := &models.Tour{
		GuideID:         guideID,
		Destination:     strings.TrimSpace(input.Destination),
		Location:        strings.TrimSpace(input.Location),
		StartDate:       start,
		EndDate:         end,
		Description:     input.Description,
		MaxParticipants: input.MaxParticipants,
		Price:           input.Price,
		Status:          status,
		Difficulty:      difficulty,
		Itinerary:       input.Itinerary,
	}
	if err := s.tourRepo.Create(ctx, tour); err != nil {
		return nil, err
	}
	return tour, nil
}
