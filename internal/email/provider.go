package email

import "time"

// InterviewInvite carries the details rendered into the interview
// notification mail.
type InterviewInvite struct {
	CandidateName string
	JobTitle      string
	Company       string
	ScheduledAt   time.Time
	Type          string
	MeetingLink   string
	Location      string
}

// Provider sends transactional mail. Services depend on this interface
// so tests and local development can run without an SMTP server.
type Provider interface {
	SendWelcome(to, username string) error
	SendInterviewScheduled(to string, invite InterviewInvite) error
	Close() error
}

// NoopProvider drops every message. Used when email is disabled.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider { return &NoopProvider{} }

func (p *NoopProvider) SendWelcome(string, string) error                  { return nil }
func (p *NoopProvider) SendInterviewScheduled(string, InterviewInvite) error { return nil }
func (p *NoopProvider) Close() error                                      { return nil }
