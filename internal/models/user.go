package models

import "time"

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// Set only for credential-based accounts; OAuth accounts have none.
	PasswordHash *string   `gorm:"column:password_hash" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
