package invitation

import (
	"time"

	"github.com/richieai/onboarding-api/internal/advisor"
	"github.com/richieai/onboarding-api/internal/client"
	"gorm.io/gorm"
)

// Stored invitation statuses. "expired" is never stored: expiry is derived
// from the clock on every access.
const (
	StatusCreated   = "created"
	StatusSent      = "sent"
	StatusOpened    = "opened"
	StatusCompleted = "completed"
)

const SourceManual = "manual"

// Invitation is a tokenized, time-limited offer for a client to self-onboard.
// The token is the sole public identifier.
type Invitation struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ClientEmail     string `gorm:"index:idx_invitations_pair" json:"clientEmail"`
	ClientFirstName string `json:"clientFirstName"`
	ClientLastName  string `json:"clientLastName"`
	Notes           string `json:"notes"`

	AdvisorID uint             `gorm:"index:idx_invitations_pair" json:"advisorId"`
	Advisor   *advisor.Advisor `gorm:"foreignKey:AdvisorID" json:"-"`

	Token     string    `gorm:"uniqueIndex" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Status    string    `gorm:"default:created" json:"status"`
	Source    string    `gorm:"default:manual" json:"source"`

	OpenedAt        *time.Time `json:"openedAt,omitempty"`
	OpenedIP        string     `json:"-"`
	OpenedUserAgent string     `json:"-"`

	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	ClientID    *uint          `json:"clientId,omitempty"`
	Client      *client.Client `gorm:"foreignKey:ClientID" json:"-"`
}

// IsExpired reports whether the invitation has passed its expiry at the
// given instant. Evaluated on every access, never persisted.
func (inv *Invitation) IsExpired(now time.Time) bool {
	return now.After(inv.ExpiresAt)
}

// TimeRemaining returns the duration until expiry, or zero once expired.
func (inv *Invitation) TimeRemaining(now time.Time) time.Duration {
	if inv.IsExpired(now) {
		return 0
	}
	return inv.ExpiresAt.Sub(now)
}
