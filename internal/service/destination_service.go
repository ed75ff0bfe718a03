package service

import (
	"context"
	"math"
	"sort"

	"github.com/trailnepal/marketplace/internal/models"
	"github.com/trailnepal/marketplace/internal/repository"
)

// DestinationStats is the dashboard aggregate over all destinations.
type DestinationStats struct {
	TotalDestinations int            `json:"total_destinations"`
	AverageRating     float64        `json:"average_rating"`
	CountByCountry    map[string]int `json:"count_by_country"`
}

type DestinationService interface {
	List(ctx context.Context) ([]models.Destination, error)
	Countries(ctx context.Context) ([]string, error)
	Popular(ctx context.Context, limit int) ([]models.Destination, error)
	Stats(ctx context.Context, principal Principal) (*DestinationStats, error)
}

type destinationService struct {
	repo       repository.DestinationRepository
	adminEmail string
}

func NewDestinationService(repo repository.DestinationRepository, adminEmail string) DestinationService {
	return &destinationService{repo: repo, adminEmail: adminEmail}
}

func (s *destinationService) List(ctx context.Context) ([]models.Destination, error) {
	return s.repo.FindAll(ctx)
}

func (s *destinationService) Countries(ctx context.Context) ([]string, error) {
	countries, err := s.repo.DistinctCountries(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(countries)
	return countries, nil
}

func (s *destinationService) Popular(ctx context.Context, limit int) ([]models.Destination, error) {
	if limit <= 0 {
		return nil, &ValidationError{Fields: map[string]string{"limit": "limit must be a positive integer"}}
	}
	return s.repo.TopRated(ctx, limit)
}

func (s *destinationService) Stats(ctx context.Context, principal Principal) (*DestinationStats, error) {
	if s.adminEmail == "" || principal.Email != s.adminEmail {
		return nil, ErrForbidden
	}

	destinations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DestinationStats{
		TotalDestinations: len(destinations),
		CountByCountry:    make(map[string]int),
	}
	var sum float64
	for _, d := range destinations {
		sum += d.Rating
		stats.CountByCountry[d.Country]++
	}
	if len(destinations) > 0 {
		avg := sum / float64(len(destinations))
		stats.AverageRating = math.Round(avg*100) / 100
	}
	return stats, nil
}
