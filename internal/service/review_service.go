package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/trailnepal/marketplace/internal/models"
	"github.com/trailnepal/marketplace/internal/repository"
	"gorm.io/gorm"
)

// CreateReviewInput targets exactly one of GuideID/DestinationID.
type CreateReviewInput struct {
	GuideID       *uint    `json:"guide_id,omitempty"`
	DestinationID *uint    `json:"destination_id,omitempty"`
	Rating        float64  `json:"rating"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags,omitempty"`
	Photos        []string `json:"photos,omitempty"`
}

type ReviewService interface {
	Get(ctx context.Context, id uint) (*models.Review, error)
	List(ctx context.Context, filter repository.ReviewFilter) ([]models.Review, error)
	Create(ctx context.Context, authorID uint, input CreateReviewInput) (*models.Review, error)
}

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) Get(ctx context.Context, id uint) (*models.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) List(ctx context.Context, filter repository.ReviewFilter) ([]models.Review, error) {
	return s.repo.Find(ctx, filter)
}

func (s *reviewService) Create(ctx context.Context, authorID uint, input CreateReviewInput) (*models.Review, error) {
	fields := fieldErrors{}
	if (input.GuideID == nil) == (input.DestinationID == nil) {
		fields["target"] = "exactly one of guide_id or destination_id must be set"
	}
	if input.Rating < 1 || input.Rating > 5 {
		fields["rating"] = "rating must be between 1 and 5"
	}
	if strings.TrimSpace(input.Content) == "" {
		fields["content"] = "content is required"
	}
	if err := fields.err(); err != nil {
		return nil, err
	}

	review := &models.Review{
		AuthorID:      authorID,
		GuideID:       input.GuideID,
		DestinationID: input.DestinationID,
		Rating:        input.Rating,
		Title:         strings.TrimSpace(input.Title),
		Content:       input.Content,
		Date:          time.Now(),
		Tags:          input.Tags,
		Photos:        input.Photos,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
