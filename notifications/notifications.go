// Package notifications defines the notification service interface used to
// deliver transactional emails, together with its SMTP and SendGrid backends.
package notifications

import "context"

// Notification is a single email to be delivered. ReplyTo is optional and is
// used by the contact relay so the recipient can answer the original sender
// directly.
type Notification struct {
	ToName    string
	ToAddress string
	ReplyTo   string
	Subject   string
	Body      string
	PlainBody string
}

// NotificationService is the interface implemented by the email backends.
type NotificationService interface {
	New(conf any) error
	SendNotification(context.Context, *Notification) error
}
