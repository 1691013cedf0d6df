// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"
)

// LeadNotification is what the sales inbox is told about a new lead.
type LeadNotification struct {
	LeadID            string
	FullName          string
	Email             string
	Phone             string
	InterestType      string
	PropertyID        string
	PreferredLanguage string
	Message           string
	Source            string
}

type IEmailService interface {
	SendLeadNotification(toEmail string, lead LeadNotification) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) SendLeadNotification(toEmail string, lead LeadNotification) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	if lead.Email != "" {
		m.SetHeader("Reply-To", lead.Email)
	}
	m.SetHeader("Subject", LeadSubject(lead))
	m.SetBody("text/html", LeadBody(lead))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send lead notification for %s: %w", lead.LeadID, err)
	}
	return nil
}

func LeadSubject(lead LeadNotification) string {
	interest := lead.InterestType
	if interest == "" {
		interest = "general"
	}
	return fmt.Sprintf("New %s lead: %s", interest, lead.FullName)
}

// LeadBody renders the notification; every user-supplied value is escaped.
func LeadBody(lead LeadNotification) string {
	rows := []struct{ label, value string }{
		{"Lead ID", lead.LeadID},
		{"Name", lead.FullName},
		{"Email", lead.Email},
		{"Phone", lead.Phone},
		{"Interest", lead.InterestType},
		{"Property", lead.PropertyID},
		{"Language", lead.PreferredLanguage},
		{"Source", lead.Source},
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">`)
	b.WriteString(`<h2>New lead</h2><table>`)
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		fmt.Fprintf(&b, "<tr><td><strong>%s</strong></td><td>%s</td></tr>", r.label, html.EscapeString(r.value))
	}
	b.WriteString(`</table>`)
	if lead.Message != "" {
		fmt.Fprintf(&b, `<p dir="auto">%s</p>`, html.EscapeString(lead.Message))
	}
	b.WriteString(`</div>`)
	return b.String()
}
