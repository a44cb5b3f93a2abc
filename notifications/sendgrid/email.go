// Package sendgrid provides a SendGrid-based implementation of the
// NotificationService interface.
package sendgrid

import (
	"context"
	"fmt"

	"github.com/bishnupur-union/society-backend/notifications"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Config represents the configuration for the SendGrid email service.
type Config struct {
	FromName    string
	FromAddress string
	APIKey      string
}

// Email is the implementation of the NotificationService interface for the
// SendGrid email service.
type Email struct {
	config *Config
	client *sendgrid.Client
}

// New initializes the SendGrid email service with the configuration.
func (se *Email) New(rawConfig any) error {
	config, ok := rawConfig.(*Config)
	if !ok {
		return fmt.Errorf("invalid SendGrid configuration")
	}
	se.config = config
	se.client = sendgrid.NewSendClient(se.config.APIKey)
	return nil
}

// SendNotification sends an email notification to the recipient using the
// SendGrid API.
func (se *Email) SendNotification(ctx context.Context, notification *notifications.Notification) error {
	from := mail.NewEmail(se.config.FromName, se.config.FromAddress)
	to := mail.NewEmail(notification.ToName, notification.ToAddress)
	message := mail.NewSingleEmail(from, notification.Subject, to, notification.PlainBody, notification.Body)
	if notification.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", notification.ReplyTo))
	}
	_, err := se.client.SendWithContext(ctx, message)
	return err
}
