// internal/application/usecase/contact_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"radacycling/internal/adapters/out/mail"
	messagedom "radacycling/internal/domain/message"
)

// WhatsAppPort is the outbound port for template notifications.
type WhatsAppPort interface {
	SendGearRequest(ctx context.Context, name, team, phone, teamSize, content string) error
}

// MessageWriter archives inquiry submissions.
type MessageWriter interface {
	Create(ctx context.Context, m messagedom.Message) (string, error)
}

var ErrContactMailerMissing = errors.New("contact: mailer is not configured")

// ContactUsecase archives an inquiry and routes the notification to the
// channel the customer asked for.
type ContactUsecase struct {
	mailer   mail.InquiryMailerPort
	whatsapp WhatsAppPort
	messages MessageWriter
}

func NewContactUsecase(mailer mail.InquiryMailerPort, whatsapp WhatsAppPort, messages MessageWriter) *ContactUsecase {
	return &ContactUsecase{
		mailer:   mailer,
		whatsapp: whatsapp,
		messages: messages,
	}
}

// Submit validates, archives, then notifies. The archive write happens
// first: a failed notification leaves the inquiry recoverable from the
// admin view, so notification errors are returned but never lose data.
func (u *ContactUsecase) Submit(ctx context.Context, msg messagedom.Message) (string, error) {
	if u == nil {
		return "", errors.New("contact: usecase is nil")
	}
	if err := msg.Validate(); err != nil {
		return "", err
	}

	var docID string
	if u.messages != nil {
		id, err := u.messages.Create(ctx, msg)
		if err != nil {
			return "", fmt.Errorf("contact: archive: %w", err)
		}
		docID = id
	}

	switch strings.ToLower(strings.TrimSpace(msg.ContactMethod)) {
	case messagedom.MethodEmail:
		if u.mailer == nil {
			return docID, ErrContactMailerMissing
		}
		if err := u.mailer.SendInquiryEmail(ctx, msg); err != nil {
			log.Printf("[contact] email notify failed for %s: %v", docID, err)
			return docID, err
		}
	default:
		if u.whatsapp == nil {
			return docID, errors.New("contact: whatsapp client is not configured")
		}
		err := u.whatsapp.SendGearRequest(ctx, msg.FullName(), msg.TeamName, msg.Phone, msg.TeamSize, msg.Content)
		if err != nil {
			log.Printf("[contact] whatsapp notify failed for %s: %v", docID, err)
			return docID, err
		}
	}

	return docID, nil
}
