package repository

import (
	"context"

	"github.com/trailnepal/marketplace/internal/models"
	"gorm.io/gorm"
)

type GuideRepository interface {
	FindAll(ctx context.Context) ([]models.Guide, error)
	FindByID(ctx context.Context, id uint) (*models.Guide, error)
	TopRated(ctx context.Context, limit int) ([]models.Guide, error)
	Delete(ctx context.Context, id uint) error
}

type guideRepository struct {
	db *gorm.DB
}

func NewGuideRepository(db *gorm.DB) GuideRepository {
	return &guideRepository{db: db}
}

func (r *guideRepository) FindAll(ctx context.Context) ([]models.Guide, error) {
	var guides []models.Guide
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&guides).Error; err != nil {
		return nil, err
	}
	return guides, nil
}

func (r *guideRepository) FindByID(ctx context.Context, id uint) (*models.Guide, error) {
	var guide models.Guide
	if err := r.db.WithContext(ctx).First(&guide, id).Error; err != nil {
		return nil, err
	}
	return &guide, nil
}

func (r *guideRepository) TopRated(ctx context.Context, limit int) ([]models.Guide, error) {
	var guides []models.Guide
	err := r.db.WithContext(ctx).
		Order("rating DESC, review_count DESC").
		Limit(limit).
		Find(&guides).Error
	if err != nil {
		return nil, err
	}
	return guides, nil
}

func (r *guideRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Guide{}, id).Error
}
