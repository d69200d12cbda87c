package notifier

import (
	"bytes"
	"fmt"
	"html/template"
)

// InvitationEmailData feeds the invitation template.
type InvitationEmailData struct {
	AdvisorName   string
	FirmName      string
	ClientName    string
	InvitationURL string
	ExpiryHours   int
}

const invitationSubjectFormat = "Complete Your Financial Profile - %s"

var invitationTmpl = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #1e3a5f; color: white; padding: 20px; text-align: center; }
    .content { background-color: #f9f9f9; padding: 30px; }
    .button { background-color: #f97316; color: white; padding: 15px 30px; text-decoration: none; border-radius: 5px; display: inline-block; margin: 20px 0; }
    .footer { background-color: #e5e7eb; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; }
    .warning { background-color: #fef3c7; padding: 15px; border-left: 4px solid #f59e0b; margin: 20px 0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Richie AI</h1>
      <p>Your Financial Advisory Platform</p>
    </div>
    <div class="content">
      <h2>Hello {{if .ClientName}}{{.ClientName}}{{else}}Valued Client{{end}},</h2>
      <p>You have been invited by <strong>{{.AdvisorName}}</strong>{{if .FirmName}} from <strong>{{.FirmName}}</strong>{{end}} to complete your financial profile on our secure platform.</p>
      <p>To get started with your personalized financial planning journey, please click the button below to complete your profile:</p>
      <div style="text-align: center;">
        <a href="{{.InvitationURL}}" class="button">Complete Your Profile</a>
      </div>
      <div class="warning">
        <strong>Important:</strong> This invitation link will expire in {{.ExpiryHours}} hours for security reasons. Please complete your profile before then.
      </div>
      <p>What you'll need to complete your profile:</p>
      <ul>
        <li>Personal information (name, contact details, address)</li>
        <li>Financial information (income, net worth, investment goals)</li>
        <li>KYC documents (PAN, Aadhar, address proof)</li>
        <li>Bank account details</li>
      </ul>
      <p>Your information is completely secure and will only be used to provide you with personalized financial advice.</p>
      <p>If you have any questions or need assistance, please don't hesitate to contact your advisor or our support team.</p>
      <p>Best regards,<br>The Richie AI Team</p>
      <hr>
      <p style="font-size: 11px; color: #6b7280;">
        If you cannot click the button above, copy and paste this link into your browser:<br>
        <a href="{{.InvitationURL}}">{{.InvitationURL}}</a>
      </p>
    </div>
    <div class="footer">
      <p>&copy; 2025 Richie AI. All rights reserved.</p>
      <p>This email was sent to you by your financial advisor. If you received this email by mistake, please ignore it.</p>
    </div>
  </div>
</body>
</html>`))

// InvitationEmail renders the invitation subject and HTML body.
func InvitationEmail(data InvitationEmailData) (subject, html string, err error) {
	firm := data.FirmName
	if firm == "" {
		firm = "Richie AI"
	}
	subject = fmt.Sprintf(invitationSubjectFormat, firm)

	var buf bytes.Buffer
	if err := invitationTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render invitation email: %w", err)
	}
	return subject, buf.String(), nil
}
