package models

import (
	"time"

	"github.com/google/uuid"
)

// Scheduling is a client booking with a barber. Day and Slot are the
// business-timezone date and HH:MM of DateTime; the unique indexes are
// declared on them.
type Scheduling struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uuid.UUID `gorm:"type:uuid;not null;index" json:"provider_id"`

	DateTime time.Time `gorm:"not null" json:"date_time"`
	Day      string    `gorm:"size:10;not null;index" json:"day"`
	Slot     string    `gorm:"size:5;not null" json:"slot"`

	ClientName  string `gorm:"size:200;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	WorkType  string `gorm:"size:2;not null;default:ND" json:"work_type"`
	State     string `gorm:"size:4;not null" json:"state"`
	Confirmed bool   `gorm:"not null" json:"confirmed"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	ExecutedAt  *time.Time `json:"executed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
