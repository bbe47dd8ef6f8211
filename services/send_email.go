package services

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/resend/resend-go/v2"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog/log"
)

// Email is one outgoing message.
type Email struct {
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

// EmailSender delivers a single message.
type EmailSender interface {
	Send(ctx context.Context, email Email) (string, error)
}

// ResendSender sends emails via the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send returns the Resend message id.
func (s *ResendSender) Send(ctx context.Context, email Email) (string, error) {
	if len(email.To) == 0 {
		return "", fmt.Errorf("at least one recipient is required")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	}
	if email.ReplyTo != "" {
		params.ReplyTo = email.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend send failed: %w", err)
	}
	log.Info().Str("emailId", sent.Id).Strs("to", email.To).Msg("Successfully sent email via Resend")
	return sent.Id, nil
}

// ContactNotifier is told about every stored contact message.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, msg models.ContactMessage) error
}

// NopNotifier is used when no email provider is configured.
type NopNotifier struct{}

func (NopNotifier) NotifyContact(context.Context, models.ContactMessage) error { return nil }

// EmailNotifier forwards contact messages to the site owner.
type EmailNotifier struct {
	sender    EmailSender
	recipient string
}

func NewEmailNotifier(sender EmailSender, recipient string) *EmailNotifier {
	return &EmailNotifier{sender: sender, recipient: recipient}
}

var contactEmail = template.Must(template.New("contact").Parse(
	`<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt; wrote:</p><p>{{.Message}}</p>`))

func (n *EmailNotifier) NotifyContact(ctx context.Context, msg models.ContactMessage) error {
	var body strings.Builder
	if err := contactEmail.Execute(&body, msg); err != nil {
		return fmt.Errorf("render contact email: %w", err)
	}

	_, err := n.sender.Send(ctx, Email{
		To:      []string{n.recipient},
		Subject: fmt.Sprintf("New message from %s", msg.Name),
		HTML:    body.String(),
		ReplyTo: msg.Email,
	})
	return err
}

// NewContactNotifier picks the notifier for the given settings.
func NewContactNotifier(apiKey, from, recipient string) ContactNotifier {
	if apiKey == "" || from == "" || recipient == "" {
		log.Info().Msg("contact notifications disabled")
		return NopNotifier{}
	}
	return NewEmailNotifier(NewResendSender(apiKey, from), recipient)
}
