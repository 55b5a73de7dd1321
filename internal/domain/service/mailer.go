package service

import "context"

// MailMessage is one outbound email.
type MailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text,omitempty"`
}

// Mailer delivers email. Implementations must be safe to call with an
// unconfigured backend (mock-send) and must never panic on delivery failure;
// callers treat failures as non-fatal.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}
