package models

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationInfo, NotificationWarning, NotificationSuccess, NotificationError:
		return true
	}
	return false
}

type Notification struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RecipientID uint             `gorm:"not null;index" json:"recipient_id"`
	Title       string           `gorm:"not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	Type        NotificationType `gorm:"type:varchar(20);not null;default:'info'" json:"type"`
	Read        bool             `gorm:"not null;default:false" json:"read"`
	ActionURL   string           `json:"action_url,omitempty"`
	// Optional pointer to the entity this notification is about.
	RelatedEntityType string    `json:"related_entity_type,omitempty"`
	RelatedEntityID   *uint     `json:"related_entity_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`

	Recipient *User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}
