// internal/adapters/out/mail/inquiry_mailer.go
package mail

import (
	"context"
	"fmt"
	"html"
	"strings"

	messagedom "radacycling/internal/domain/message"
)

// InquiryMailerPort is the outbound port the contact usecase sends
// inquiry notifications through.
type InquiryMailerPort interface {
	SendInquiryEmail(ctx context.Context, msg messagedom.Message) error
}

// EmailClient abstracts the concrete mail sender (SMTP / SendGrid / SES).
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// InquiryMailer formats a custom-order inquiry and delivers it to the shop
// inbox via an EmailClient.
type InquiryMailer struct {
	client      EmailClient
	fromAddress string
	toAddress   string
}

func NewInquiryMailer(client EmailClient, fromAddress, toAddress string) *InquiryMailer {
	return &InquiryMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
		toAddress:   strings.TrimSpace(toAddress),
	}
}

// SendInquiryEmail sends the form contents to the shop inbox. The customer's
// address goes into the body, not the envelope, so replies are a deliberate
// copy-paste rather than an accidental reply-all.
func (m *InquiryMailer) SendInquiryEmail(ctx context.Context, msg messagedom.Message) error {
	if m == nil || m.client == nil {
		return fmt.Errorf("inquiry_mailer: email client is nil")
	}
	if m.toAddress == "" {
		return fmt.Errorf("inquiry_mailer: receiver address is empty")
	}

	subject := fmt.Sprintf("New gear inquiry from %s", msg.FullName())
	if strings.TrimSpace(msg.TeamName) != "" {
		subject = fmt.Sprintf("New gear inquiry from %s (%s)", msg.FullName(), strings.TrimSpace(msg.TeamName))
	}

	return m.client.Send(ctx, m.fromAddress, m.toAddress, subject, buildInquiryBody(msg))
}

func buildInquiryBody(msg messagedom.Message) string {
	row := func(label, value string) string {
		value = strings.TrimSpace(value)
		if value == "" {
			value = "-"
		}
		return fmt.Sprintf("<tr><td><b>%s</b></td><td>%s</td></tr>", label, html.EscapeString(value))
	}

	var b strings.Builder
	b.WriteString("<h2>Custom gear inquiry</h2>")
	b.WriteString("<table>")
	b.WriteString(row("Name", msg.FullName()))
	b.WriteString(row("Team", msg.TeamName))
	b.WriteString(row("Email", msg.Email))
	b.WriteString(row("Phone", msg.Phone))
	b.WriteString(row("Team size", msg.TeamSize))
	b.WriteString(row("Preferred contact", msg.ContactMethod))
	b.WriteString("</table>")
	b.WriteString(fmt.Sprintf("<p>%s</p>", html.EscapeString(strings.TrimSpace(msg.Content))))
	return b.String()
}
