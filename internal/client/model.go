package client

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/richieai/onboarding-api/internal/advisor"
	"gorm.io/gorm"
)

// Client statuses. New records from onboarding always start as "onboarding";
// "invited" exists for clients created ahead of an accepted invitation.
const (
	StatusInvited    = "invited"
	StatusOnboarding = "onboarding"
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusSuspended  = "suspended"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `gorm:"default:India" json:"country"`
}

type BankDetails struct {
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	BankName      string `json:"bankName"`
	BranchName    string `json:"branchName"`
}

type CommunicationPreferences struct {
	Email    bool `gorm:"default:true" json:"email"`
	SMS      bool `gorm:"default:true" json:"sms"`
	Phone    bool `gorm:"default:true" json:"phone"`
	WhatsApp bool `json:"whatsapp"`
}

type KYCDocument struct {
	Type       string    `json:"type"`
	FileName   string    `json:"fileName"`
	FilePath   string    `json:"filePath"`
	UploadDate time.Time `json:"uploadDate"`
}

// Client is the onboarded profile owned by one advisor.
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `gorm:"index" json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`

	Address Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	AnnualIncome         float64 `json:"annualIncome"`
	NetWorth             float64 `json:"netWorth"`
	MonthlySavingsTarget float64 `json:"monthlySavingsTarget"`
	InvestmentExperience string  `json:"investmentExperience"`
	RiskTolerance        string  `json:"riskTolerance"`

	InvestmentGoals   []string `gorm:"type:jsonb;serializer:json" json:"investmentGoals"`
	InvestmentHorizon string   `json:"investmentHorizon"`

	PANNumber    string        `json:"panNumber"`
	AadharNumber string        `json:"aadharNumber"`
	KYCStatus    string        `gorm:"default:pending" json:"kycStatus"`
	KYCDocuments []KYCDocument `gorm:"type:jsonb;serializer:json" json:"kycDocuments"`

	BankDetails BankDetails `gorm:"embedded;embeddedPrefix:bank_" json:"bankDetails"`

	AdvisorID uint             `gorm:"index:idx_clients_advisor_status" json:"advisorId"`
	Advisor   *advisor.Advisor `gorm:"foreignKey:AdvisorID" json:"-"`

	Status         string    `gorm:"default:invited;index:idx_clients_advisor_status" json:"status"`
	OnboardingStep int       `json:"onboardingStep"`
	LastActiveDate time.Time `json:"lastActiveDate"`

	CommunicationPreferences CommunicationPreferences `gorm:"embedded;embeddedPrefix:comm_" json:"communicationPreferences"`

	Notes string `json:"notes"`

	FATCAStatus string `gorm:"default:pending" json:"fatcaStatus"`
	CRSStatus   string `gorm:"default:pending" json:"crsStatus"`
}

// FullName joins first and last name.
func (c *Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// MarshalJSON masks the Aadhar number and bank account number on every
// serialization. Raw values stay unmasked in storage.
func (c Client) MarshalJSON() ([]byte, error) {
	type alias Client
	out := alias(c)
	out.AadharNumber = MaskAllButLast4(out.AadharNumber)
	out.BankDetails.AccountNumber = MaskAllButLast4(out.BankDetails.AccountNumber)
	return json.Marshal(out)
}

// MaskAllButLast4 replaces every character except the last four with '*'.
func MaskAllButLast4(s string) string {
	if len(s) <= 4 {
		return s
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
