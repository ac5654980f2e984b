package models

import (
	"time"

	"github.com/google/uuid"
)

// User — учётная запись (принципал с ролью).
// HashedPassword никогда не сериализуется в ответы (json:"-").
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName         string   `gorm:"size:100;not null" json:"first_name"`
	LastName          string   `gorm:"size:100;not null" json:"last_name"`
	Email             string   `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PhoneNumber       string   `gorm:"index;size:20;not null" json:"phone_number"`
	HashedPassword    string   `gorm:"size:355;not null" json:"-"`
	Role              UserRole `gorm:"size:32;not null" json:"role"`
	ProfilePictureURL string   `gorm:"size:500" json:"profile_picture_url,omitempty"`
	IsActive          bool     `gorm:"default:true" json:"is_active"`
}
