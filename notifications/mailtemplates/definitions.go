// Package mailtemplates provides predefined email templates for the
// transactional emails of the service, along with utilities for rendering
// email content.
package mailtemplates

import "github.com/bishnupur-union/society-backend/notifications"

// ContactRelayNotification is the notification sent to the society contact
// address when a visitor submits the contact form.
var ContactRelayNotification = MailTemplate{
	File: "contact_relay",
	Placeholder: notifications.Notification{
		Subject: "New contact message from {{.Name}}",
		PlainBody: `You have a new contact message:

Name: {{.Name}}
Email: {{.Email}}

{{.Message}}`,
	},
}

// WelcomeNotification is the notification sent to a member right after
// signing up.
var WelcomeNotification = MailTemplate{
	File: "welcome_member",
	Placeholder: notifications.Notification{
		Subject: "Welcome to the Bishnupur Union Society",
		PlainBody: `Hello {{.Name}},

Your membership account has been created. You can now log in with your email address.

Best regards,
The Bishnupur Union Society`,
	},
}
