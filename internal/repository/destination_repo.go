package repository

import (
	"context"

	"github.com/trailnepal/marketplace/internal/models"
	"gorm.io/gorm"
)

type DestinationRepository interface {
	FindAll(ctx context.Context) ([]models.Destination, error)
	FindByID(ctx context.Context, id uint) (*models.Destination, error)
	DistinctCountries(ctx context.Context) ([]string, error)
	TopRated(ctx context.Context, limit int) ([]models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) FindAll(ctx context.Context) ([]models.Destination, error) {
	var destinations []models.Destination
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) FindByID(ctx context.Context, id uint) (*models.Destination, error) {
	var destination models.Destination
	if err := r.db.WithContext(ctx).First(&destination, id).Error; err != nil {
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) DistinctCountries(ctx context.Context) ([]string, error) {
	var countries []string
	err := r.db.WithContext(ctx).
		Model(&models.Destination{}).
		Distinct().
		Pluck("country", &countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *destinationRepository) TopRated(ctx context.Context, limit int) ([]models.Destination, error) {
	var destinations []models.Destination
	err := r.db.WithContext(ctx).
		Order("rating DESC").
		Limit(limit).
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}
