package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"jobboard/internal/config"
	"jobboard/internal/logger"
)

// Provider delivers transactional mail. Services depend on the interface so
// tests can substitute a recorder and disabled environments a no-op.
type Provider interface {
	Send(to, subject, htmlBody string) error
}

// SMTPProvider sends through the configured SMTP relay via gomail.
type SMTPProvider struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPProvider(cfg config.EmailConfig) *SMTPProvider {
	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}
	return &SMTPProvider{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   from,
	}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

// NoopProvider logs instead of sending. Used when email is disabled in config.
type NoopProvider struct{}

func (NoopProvider) Send(to, subject, _ string) error {
	logger.Debug("Email disabled, skipping send", "to", to, "subject", subject)
	return nil
}

// NewProvider picks the implementation based on config.
func NewProvider(cfg config.EmailConfig) Provider {
	if !cfg.Enabled {
		return NoopProvider{}
	}
	return NewSMTPProvider(cfg)
}
