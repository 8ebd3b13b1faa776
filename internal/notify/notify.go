// Notification dispatch. Failures here are logged by the caller and
// never undo report persistence, which has already completed.

package notify

import "context"

// Attachment is an optional file sent along with the report email.
type Attachment struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Notifier sends one report notification.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, htmlBody string, att *Attachment) error
}
