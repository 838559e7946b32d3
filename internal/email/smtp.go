package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"luvo_backend/internal/config"
)

// SMTPProvider delivers mail through an SMTP relay using gomail.
type SMTPProvider struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
	templates *templateManager
}

func NewSMTPProvider(cfg config.EmailConfig) (*SMTPProvider, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("smtp host is required")
	}

	tm, err := newTemplateManager()
	if err != nil {
		return nil, err
	}

	return &SMTPProvider{
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		templates: tm,
	}, nil
}

// NewProvider returns an SMTP provider when email is enabled, otherwise
// the noop provider.
func NewProvider(cfg config.EmailConfig) (Provider, error) {
	if !cfg.Enabled {
		return NewNoopProvider(), nil
	}
	return NewSMTPProvider(cfg)
}

func (p *SMTPProvider) SendWelcome(to, username string) error {
	body, err := p.templates.render("welcome", templateData{"Username": username})
	if err != nil {
		return err
	}
	return p.send(to, "Welcome to Luvo", body)
}

func (p *SMTPProvider) SendInterviewScheduled(to string, invite InterviewInvite) error {
	body, err := p.templates.render("interview_scheduled", templateData{
		"CandidateName": invite.CandidateName,
		"JobTitle":      invite.JobTitle,
		"Company":       invite.Company,
		"When":          invite.ScheduledAt.Format("Monday, 2 January 2006 at 15:04 MST"),
		"Type":          invite.Type,
		"MeetingLink":   invite.MeetingLink,
		"Location":      invite.Location,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Interview scheduled: %s at %s", invite.JobTitle, invite.Company)
	return p.send(to, subject, body)
}

func (p *SMTPProvider) Close() error { return nil }

func (p *SMTPProvider) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.fromEmail, p.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
