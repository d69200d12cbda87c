// Package notifier delivers invitation email to clients. The lifecycle
// manager only sees the Notifier interface; SendGrid is the production
// implementation.
package notifier

import "context"

type Notifier interface {
	Send(ctx context.Context, toEmail, toName, subject, htmlBody string) error
}
