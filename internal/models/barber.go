package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barber struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	PhoneNumber string `gorm:"size:20" json:"phone_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// DisplayName is the provider reference clients book against.
func (b *Barber) DisplayName() string {
	return b.User.FirstName
}
