package advisor

import (
	"time"

	"gorm.io/gorm"
)

// Advisor statuses. Only active accounts pass the authentication gate;
// the others are toggled by account management outside this service.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// Advisor is an authenticated account owning clients and invitations.
type Advisor struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `gorm:"uniqueIndex" json:"email"`
	Password        string `json:"-"`
	FirmName        string `json:"firmName"`
	PhoneNumber     string `json:"phoneNumber"`
	IsEmailVerified bool   `json:"isEmailVerified"`
	Status          string `gorm:"default:active" json:"status"`
}
