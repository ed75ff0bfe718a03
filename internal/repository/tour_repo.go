package repository

import (
	"context"

	"github.com/trailnepal/marketplace/internal/models"
	"gorm.io/gorm"
)

// TourFilter narrows schedule lookups. Nil fields match everything.
type TourFilter struct {
	Status *models.TourStatus
}

type TourRepository interface {
	Create(ctx context.Context, tour *models.Tour) error
	FindByGuideID(ctx context.Context, guideID uint, filter TourFilter) ([]models.Tour, error)
}

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) Create(ctx context.Context, tour *models.Tour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *tourRepository) FindByGuideID(ctx context.Context, guideID uint, filter TourFilter) ([]models.Tour, error) {
	var tours []models.Tour
	q := r.db.WithContext(ctx).Where("guide_id = ?", guideID)
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if err := q.Order("start_date ASC, id ASC").Find(&tours).Error; err != nil {
		return nil, err
	}
	return tours, nil
}
