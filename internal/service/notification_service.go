package service

import (
	"context"
	"strings"

	"github.com/trailnepal/marketplace/internal/models"
	"github.com/trailnepal/marketplace/internal/repository"
)

// CreateNotificationInput excludes id, created_at and read; those are
// system-assigned (read starts false).
type CreateNotificationInput struct {
	RecipientID       uint   `json:"recipient_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Type              string `json:"type"`
	ActionURL         string `json:"action_url,omitempty"`
	RelatedEntityType string `json:"related_entity_type,omitempty"`
	RelatedEntityID   *uint  `json:"related_entity_id,omitempty"`
}

type NotificationService interface {
	List(ctx context.Context, recipientID uint) ([]models.Notification, error)
	Create(ctx context.Context, input CreateNotificationInput) (*models.Notification, error)
	MarkRead(ctx context.Context, id, recipientID uint, read bool) error
	MarkAllRead(ctx context.Context, recipientID uint) (int64, error)
	UnreadCount(ctx context.Context, recipientID uint) (int64, error)
	Delete(ctx context.Context, id, recipientID uint) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, recipientID uint) ([]models.Notification, error) {
	return s.repo.FindByRecipient(ctx, recipientID)
}

func (s *notificationService) Create(ctx context.Context, input CreateNotificationInput) (*models.Notification, error) {
	fields := fieldErrors{}
	if input.RecipientID == 0 {
		fields["recipient_id"] = "recipient_id is required"
	}
	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "title is required"
	}
	typ := models.NotificationType(input.Type)
	if !typ.Valid() {
		fields["type"] = "type must be one of info, warning, success, error"
	}
	if err := fields.err(); err != nil {
		return nil, err
	}

	n := &models.Notification{
		RecipientID:       input.RecipientID,
		Title:             strings.TrimSpace(input.Title),
		Description:       input.Description,
		Type:              typ,
		ActionURL:         input.ActionURL,
		RelatedEntityType: input.RelatedEntityType,
		RelatedEntityID:   input.RelatedEntityID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// MarkRead only touches rows owned by recipientID; a miss (wrong owner or
// no such row) is reported as not found, never as someone else's update.
func (s *notificationService) MarkRead(ctx context.Context, id, recipientID uint, read bool) error {
	affected, err := s.repo.SetRead(ctx, id, recipientID, read)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	return s.repo.MarkAllRead(ctx, recipientID)
}

func (s *notificationService) UnreadCount(ctx context.Context, recipientID uint) (int64, error) {
	return s.repo.CountUnread(ctx, recipientID)
}

func (s *notificationService) Delete(ctx context.Context, id, recipientID uint) error {
	affected, err := s.repo.Delete(ctx, id, recipientID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
