// Package validation holds the field rules shared by the public onboarding
// submission path and the client registry write path, so the two never drift.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRe  = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)
	phoneRe  = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s\.]?[(]?[0-9]{1,4}[)]?[-\s\.]?[0-9]{1,9}$`)
	panRe    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	aadharRe = regexp.MustCompile(`^[0-9]{12}$`)
	ifscRe   = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// Enumerated value lists mirrored by the storage layer.
var (
	InvestmentExperiences = []string{"Beginner", "Intermediate", "Advanced", "Expert"}
	RiskTolerances        = []string{"Conservative", "Moderate", "Aggressive", "Very Aggressive"}
	InvestmentGoals       = []string{"Retirement", "Education", "Home Purchase", "Emergency Fund", "Wealth Building", "Tax Saving", "Other"}
	InvestmentHorizons    = []string{"Short-term (1-3 years)", "Medium-term (3-7 years)", "Long-term (7+ years)"}
	KYCStatuses           = []string{"pending", "in_progress", "completed", "rejected"}
	KYCDocumentTypes      = []string{"PAN", "Aadhar", "Address Proof", "Bank Statement", "Other"}
	ClientStatuses        = []string{"invited", "onboarding", "active", "inactive", "suspended"}
	ComplianceStatuses    = []string{"pending", "completed", "not_applicable"}
)

// FieldError describes one failed constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors aggregates field-level failures; it satisfies error.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Add appends a failure and returns the updated list.
func (e Errors) Add(field, message string) Errors {
	return append(e, FieldError{Field: field, Message: message})
}

// OrNil returns nil when no constraint failed, so callers can use the
// usual err != nil check.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func Email(s string) bool { return emailRe.MatchString(s) }

func Phone(s string) bool { return phoneRe.MatchString(s) }

func PAN(s string) bool { return panRe.MatchString(s) }

func Aadhar(s string) bool { return aadharRe.MatchString(s) }

func IFSC(s string) bool { return ifscRe.MatchString(s) }

// OneOf reports whether value appears in allowed. Empty values pass; the
// caller decides whether the field is required.
func OneOf(value string, allowed []string) bool {
	if value == "" {
		return true
	}
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

// MaxLen reports whether s fits within n characters.
func MaxLen(s string, n int) bool { return len(s) <= n }
