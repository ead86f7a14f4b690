package alert

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/rightsguard/backend/internal/storage/models"
	"github.com/rightsguard/backend/pkg/logger"
)

// ErrNoChannel means the notifier has no way to reach the contact.
var ErrNoChannel = errors.New("alert: contact has no reachable channel")

// Notifier delivers an alert message to one contact.
type Notifier interface {
	Notify(ctx context.Context, contact models.EmergencyContact, subject, body string) error
}

// LogNotifier records alerts in the log without delivering them. It is used
// when no delivery provider is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, contact models.EmergencyContact, subject, body string) error {
	logger.Info("Emergency alert (log only)",
		zap.String("contact", contact.Name),
		zap.String("phone", contact.PhoneNumber),
		zap.String("subject", subject),
	)
	return nil
}

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// SendGridNotifier emails contacts that have an address on file.
type SendGridNotifier struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridNotifier(cfg SendGridConfig) *SendGridNotifier {
	if cfg.APIKey == "" {
		return nil
	}
	if cfg.FromName == "" {
		cfg.FromName = "RightsGuard"
	}
	return &SendGridNotifier{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (n *SendGridNotifier) Notify(ctx context.Context, contact models.EmergencyContact, subject, body string) error {
	if contact.Email == "" {
		return ErrNoChannel
	}

	from := mail.NewEmail(n.fromName, n.fromEmail)
	to := mail.NewEmail(contact.Name, contact.Email)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	response, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	logger.Info("Emergency alert emailed",
		zap.String("contact", contact.Name),
		zap.Int("status", response.StatusCode),
	)
	return nil
}
