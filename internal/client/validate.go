package client

import "github.com/richieai/onboarding-api/internal/validation"

// Validate applies the shared field rules. Both write paths call this: the
// public onboarding submission and the advisor-facing update.
func (c *Client) Validate() error {
	var errs validation.Errors

	if c.FirstName == "" {
		errs = errs.Add("firstName", "First name is required")
	} else if !validation.MaxLen(c.FirstName, 50) {
		errs = errs.Add("firstName", "First name cannot exceed 50 characters")
	}
	if c.LastName == "" {
		errs = errs.Add("lastName", "Last name is required")
	} else if !validation.MaxLen(c.LastName, 50) {
		errs = errs.Add("lastName", "Last name cannot exceed 50 characters")
	}
	if c.Email == "" {
		errs = errs.Add("email", "Email is required")
	} else if !validation.Email(c.Email) {
		errs = errs.Add("email", "Please enter a valid email")
	}
	if c.PhoneNumber != "" && !validation.Phone(c.PhoneNumber) {
		errs = errs.Add("phoneNumber", "Please enter a valid phone number")
	}

	if !validation.MaxLen(c.Address.Street, 200) {
		errs = errs.Add("address.street", "Street address cannot exceed 200 characters")
	}
	if !validation.MaxLen(c.Address.City, 50) {
		errs = errs.Add("address.city", "City cannot exceed 50 characters")
	}
	if !validation.MaxLen(c.Address.State, 50) {
		errs = errs.Add("address.state", "State cannot exceed 50 characters")
	}
	if !validation.MaxLen(c.Address.ZipCode, 10) {
		errs = errs.Add("address.zipCode", "Zip code cannot exceed 10 characters")
	}
	if !validation.MaxLen(c.Address.Country, 50) {
		errs = errs.Add("address.country", "Country cannot exceed 50 characters")
	}

	if c.AnnualIncome < 0 {
		errs = errs.Add("annualIncome", "Annual income cannot be negative")
	}
	if c.NetWorth < 0 {
		errs = errs.Add("netWorth", "Net worth cannot be negative")
	}
	if c.MonthlySavingsTarget < 0 {
		errs = errs.Add("monthlySavingsTarget", "Monthly savings target cannot be negative")
	}
	if !validation.OneOf(c.InvestmentExperience, validation.InvestmentExperiences) {
		errs = errs.Add("investmentExperience", "Invalid investment experience")
	}
	if !validation.OneOf(c.RiskTolerance, validation.RiskTolerances) {
		errs = errs.Add("riskTolerance", "Invalid risk tolerance")
	}
	for _, g := range c.InvestmentGoals {
		if !validation.OneOf(g, validation.InvestmentGoals) {
			errs = errs.Add("investmentGoals", "Invalid investment goal: "+g)
		}
	}
	if !validation.OneOf(c.InvestmentHorizon, validation.InvestmentHorizons) {
		errs = errs.Add("investmentHorizon", "Invalid investment horizon")
	}

	if c.PANNumber != "" && !validation.PAN(c.PANNumber) {
		errs = errs.Add("panNumber", "Please enter a valid PAN number")
	}
	if c.AadharNumber != "" && !validation.Aadhar(c.AadharNumber) {
		errs = errs.Add("aadharNumber", "Please enter a valid Aadhar number")
	}
	if !validation.OneOf(c.KYCStatus, validation.KYCStatuses) {
		errs = errs.Add("kycStatus", "Invalid KYC status")
	}
	for _, d := range c.KYCDocuments {
		if !validation.OneOf(d.Type, validation.KYCDocumentTypes) {
			errs = errs.Add("kycDocuments", "Invalid KYC document type: "+d.Type)
		}
	}

	if c.BankDetails.IFSCCode != "" && !validation.IFSC(c.BankDetails.IFSCCode) {
		errs = errs.Add("bankDetails.ifscCode", "Please enter a valid IFSC code")
	}
	if !validation.MaxLen(c.BankDetails.BankName, 100) {
		errs = errs.Add("bankDetails.bankName", "Bank name cannot exceed 100 characters")
	}
	if !validation.MaxLen(c.BankDetails.BranchName, 100) {
		errs = errs.Add("bankDetails.branchName", "Branch name cannot exceed 100 characters")
	}

	if !validation.OneOf(c.Status, validation.ClientStatuses) {
		errs = errs.Add("status", "Invalid status")
	}
	if c.OnboardingStep < 0 || c.OnboardingStep > 5 {
		errs = errs.Add("onboardingStep", "Onboarding step must be between 0 and 5")
	}
	if !validation.MaxLen(c.Notes, 1000) {
		errs = errs.Add("notes", "Notes cannot exceed 1000 characters")
	}
	if !validation.OneOf(c.FATCAStatus, validation.ComplianceStatuses) {
		errs = errs.Add("fatcaStatus", "Invalid FATCA status")
	}
	if !validation.OneOf(c.CRSStatus, validation.ComplianceStatuses) {
		errs = errs.Add("crsStatus", "Invalid CRS status")
	}

	return errs.OrNil()
}
