package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Sender delivers the contact-form notification for a single submission.
type Sender interface {
	SendContactNotification(ctx context.Context, name, email string) error
}

// SendGridSender sends the notification to the configured inbox through the
// SendGrid v3 API.
type SendGridSender struct {
	apiKey string
	from   string
	inbox  string
}

func NewSendGridSender(apiKey, from, inbox string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, from: from, inbox: inbox}
}

func (s *SendGridSender) SendContactNotification(ctx context.Context, name, email string) error {
	from := sgmail.NewEmail("Contact Form", s.from)
	to := sgmail.NewEmail("", s.inbox)
	subject := fmt.Sprintf("New contact form submission from %s", name)
	body := fmt.Sprintf("%s (%s) submitted the contact form. Reply to follow up.", name, email)
	message := sgmail.NewSingleEmail(from, subject, to, body,
		fmt.Sprintf("<p><strong>%s</strong> (%s) submitted the contact form.</p>", name, email))

	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: unexpected status %d", resp.StatusCode)
	}
	return nil
}
