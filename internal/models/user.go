package models

import "time"

// User is the account behind a barber. FirstName is the public display name
// clients use to pick a provider.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FirstName    string `gorm:"size:150;uniqueIndex;not null" json:"first_name"`
	LastName     string `gorm:"size:150;not null" json:"last_name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
