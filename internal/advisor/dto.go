package advisor

import "time"

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirmName  string `json:"firmName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SummaryDTO is the advisor shape returned by auth endpoints.
type SummaryDTO struct {
	ID              uint      `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	FirmName        string    `json:"firmName,omitempty"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toSummary(a *Advisor) SummaryDTO {
	return SummaryDTO{
		ID:              a.ID,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		FirmName:        a.FirmName,
		IsEmailVerified: a.IsEmailVerified,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
	}
}
