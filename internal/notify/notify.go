// Package notify holds the notification gateway consumed by the
// fulfillment flow and the renderers that produce notification bodies
// and receipts. Actual email delivery is an external collaborator fed
// through the gateway.
package notify

// Attachment is a binary document attached to a notification.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// Notification is one message for a customer.
type Notification struct {
	Recipient   string       `json:"recipient"`
	Subject     string       `json:"subject"`
	HTMLBody    string       `json:"html_body"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Gateway dispatches notifications. Callers treat Send as
// fire-and-forget: a returned error is logged, never propagated into
// the operation that triggered the notification.
type Gateway interface {
	Send(n Notification) error
}
