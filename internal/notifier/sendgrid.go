package notifier

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGrid struct {
	apiKey   string
	from     string
	fromName string
}

// NewSendGrid returns a Notifier backed by the SendGrid v3 mail API.
func NewSendGrid(apiKey, from, fromName string) Notifier {
	return &sendGrid{apiKey: apiKey, from: from, fromName: fromName}
}

func (s *sendGrid) Send(ctx context.Context, toEmail, toName, subject, htmlBody string) error {
	m := mail.NewV3MailInit(
		mail.NewEmail(s.fromName, s.from), subject,
		mail.NewEmail(toName, toEmail),
		mail.NewContent("text/html", htmlBody),
	)

	req := sendgrid.GetRequest(s.apiKey, "/v3/mail/send", "https://api.sendgrid.com")
	req.Method = "POST"
	req.Body = mail.GetRequestBody(m)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: unexpected status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
