package client

import (
	"strings"
	"testing"

	"github.com/richieai/onboarding-api/internal/validation"
	"github.com/stretchr/testify/require"
)

func validClient() *Client {
	return &Client{
		FirstName:            "Asha",
		LastName:             "Rao",
		Email:                "asha@x.com",
		PhoneNumber:          "9876543210",
		InvestmentExperience: "Beginner",
		RiskTolerance:        "Moderate",
		InvestmentGoals:      []string{"Retirement", "Education"},
		InvestmentHorizon:    "Long-term (7+ years)",
		PANNumber:            "ABCDE1234F",
		AadharNumber:         "123456789012",
		KYCStatus:            "pending",
		BankDetails:          BankDetails{IFSCCode: "HDFC0001234"},
		Status:               StatusOnboarding,
		OnboardingStep:       2,
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr validation.Errors
	require.ErrorAs(t, err, &verr)
	out := make(map[string]string, len(verr))
	for _, fe := range verr {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestValidateAcceptsFullProfile(t *testing.T) {
	require.NoError(t, validClient().Validate())
}

func TestValidateRequiredFields(t *testing.T) {
	c := &Client{}
	errs := fieldErrors(t, c.Validate())

	require.Equal(t, "First name is required", errs["firstName"])
	require.Equal(t, "Last name is required", errs["lastName"])
	require.Equal(t, "Email is required", errs["email"])
}

func TestValidateFieldLimits(t *testing.T) {
	c := validClient()
	c.FirstName = strings.Repeat("a", 51)
	c.Notes = strings.Repeat("n", 1001)
	c.Address.Street = strings.Repeat("s", 201)

	errs := fieldErrors(t, c.Validate())
	require.Equal(t, "First name cannot exceed 50 characters", errs["firstName"])
	require.Equal(t, "Notes cannot exceed 1000 characters", errs["notes"])
	require.Equal(t, "Street address cannot exceed 200 characters", errs["address.street"])
}

func TestValidateIdentifiers(t *testing.T) {
	c := validClient()
	c.PANNumber = "bogus"
	c.AadharNumber = "123"
	c.BankDetails.IFSCCode = "nope"

	errs := fieldErrors(t, c.Validate())
	require.Equal(t, "Please enter a valid PAN number", errs["panNumber"])
	require.Equal(t, "Please enter a valid Aadhar number", errs["aadharNumber"])
	require.Equal(t, "Please enter a valid IFSC code", errs["bankDetails.ifscCode"])
}

func TestValidateEnums(t *testing.T) {
	c := validClient()
	c.RiskTolerance = "Reckless"
	c.InvestmentGoals = []string{"Retirement", "Yachts"}
	c.Status = "deleted"

	errs := fieldErrors(t, c.Validate())
	require.Equal(t, "Invalid risk tolerance", errs["riskTolerance"])
	require.Equal(t, "Invalid investment goal: Yachts", errs["investmentGoals"])
	require.Equal(t, "Invalid status", errs["status"])
}

func TestValidateNumericBounds(t *testing.T) {
	c := validClient()
	c.AnnualIncome = -1
	c.NetWorth = -100
	c.OnboardingStep = 6

	errs := fieldErrors(t, c.Validate())
	require.Equal(t, "Annual income cannot be negative", errs["annualIncome"])
	require.Equal(t, "Net worth cannot be negative", errs["netWorth"])
	require.Equal(t, "Onboarding step must be between 0 and 5", errs["onboardingStep"])
}

func TestValidateOptionalFieldsMayBeEmpty(t *testing.T) {
	c := &Client{FirstName: "Asha", LastName: "Rao", Email: "asha@x.com"}
	require.NoError(t, c.Validate())
}
