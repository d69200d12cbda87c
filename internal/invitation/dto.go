package invitation

import (
	"time"

	"github.com/richieai/onboarding-api/internal/advisor"
	"github.com/richieai/onboarding-api/internal/client"
)

type issueRequest struct {
	ClientEmail     string `json:"clientEmail"`
	ClientFirstName string `json:"clientFirstName"`
	ClientLastName  string `json:"clientLastName"`
	Notes           string `json:"notes"`
}

type issueResponse struct {
	InvitationID    uint      `json:"invitationId"`
	ClientEmail     string    `json:"clientEmail"`
	ExpiresAt       time.Time `json:"expiresAt"`
	InvitationURL   string    `json:"invitationUrl"`
	InvitationCount int64     `json:"invitationCount"`
	MaxInvitations  int64     `json:"maxInvitations"`
}

type advisorSummary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FirmName  string `json:"firmName,omitempty"`
	Email     string `json:"email,omitempty"`
}

type clientSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Status    string `json:"status"`
}

type listItemDTO struct {
	ID              uint            `json:"id"`
	ClientEmail     string          `json:"clientEmail"`
	ClientFirstName string          `json:"clientFirstName,omitempty"`
	ClientLastName  string          `json:"clientLastName,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Status          string          `json:"status"`
	Source          string          `json:"source"`
	CreatedAt       time.Time       `json:"createdAt"`
	ExpiresAt       time.Time       `json:"expiresAt"`
	OpenedAt        *time.Time      `json:"openedAt,omitempty"`
	CompletedAt     *time.Time      `json:"completedAt,omitempty"`
	Advisor         *advisorSummary `json:"advisor,omitempty"`
	Client          *clientSummary  `json:"client,omitempty"`
}

func toListItem(inv *Invitation) listItemDTO {
	dto := listItemDTO{
		ID:              inv.ID,
		ClientEmail:     inv.ClientEmail,
		ClientFirstName: inv.ClientFirstName,
		ClientLastName:  inv.ClientLastName,
		Notes:           inv.Notes,
		Status:          inv.Status,
		Source:          inv.Source,
		CreatedAt:       inv.CreatedAt,
		ExpiresAt:       inv.ExpiresAt,
		OpenedAt:        inv.OpenedAt,
		CompletedAt:     inv.CompletedAt,
	}
	if inv.Advisor != nil {
		dto.Advisor = toAdvisorSummary(inv.Advisor, false)
	}
	if inv.Client != nil {
		dto.Client = &clientSummary{
			ID:        inv.Client.ID,
			FirstName: inv.Client.FirstName,
			LastName:  inv.Client.LastName,
			Email:     inv.Client.Email,
			Status:    inv.Client.Status,
		}
	}
	return dto
}

func toAdvisorSummary(a *advisor.Advisor, withEmail bool) *advisorSummary {
	s := &advisorSummary{FirstName: a.FirstName, LastName: a.LastName, FirmName: a.FirmName}
	if withEmail {
		s.Email = a.Email
	}
	return s
}

// publicFetchDTO is what the unauthenticated onboarding form sees: the
// invitation prefill plus an advisor summary, nothing more.
type publicFetchDTO struct {
	Invitation publicInvitationDTO `json:"invitation"`
	Advisor    *advisorSummary     `json:"advisor,omitempty"`
}

type publicInvitationDTO struct {
	ID               uint      `json:"id"`
	ClientEmail      string    `json:"clientEmail"`
	ClientFirstName  string    `json:"clientFirstName,omitempty"`
	ClientLastName   string    `json:"clientLastName,omitempty"`
	ExpiresAt        time.Time `json:"expiresAt"`
	TimeRemainingSec int64     `json:"timeRemainingSeconds"`
}

type completeResponse struct {
	ClientID uint   `json:"clientId"`
	Status   string `json:"status"`
}

func toCompleteResponse(c *client.Client) completeResponse {
	return completeResponse{ClientID: c.ID, Status: c.Status}
}
