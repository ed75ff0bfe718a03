package repository

import (
	"context"

	"github.com/trailnepal/marketplace/internal/models"
	"gorm.io/gorm"
)

// ReviewFilter narrows review listings to one target entity.
type ReviewFilter struct {
	GuideID       *uint
	DestinationID *uint
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	Find(ctx context.Context, filter ReviewFilter) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Guide").
		Preload("Destination").
		First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Find(ctx context.Context, filter ReviewFilter) ([]models.Review, error) {
	var reviews []models.Review
	q := r.db.WithContext(ctx).Preload("Author")
	if filter.GuideID != nil {
		q = q.Where("guide_id = ?", *filter.GuideID)
	}
	if filter.DestinationID != nil {
		q = q.Where("destination_id = ?", *filter.DestinationID)
	}
	if err := q.Order("date DESC, id DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
