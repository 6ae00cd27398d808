// internal/domain/message/message.go
package message

import (
	"errors"
	"strings"
)

var (
	ErrInvalidMessage = errors.New("message: invalid")
)

// Contact method flag values. Anything other than "email" routes to WhatsApp.
const (
	MethodEmail    = "email"
	MethodWhatsApp = "whatsapp"
)

// Message is a custom-order inquiry submitted through the contact form.
// Append-only, keyed by userId, read back by the admin view.
type Message struct {
	ID     string `json:"id,omitempty" firestore:"id,omitempty"`
	UserID string `json:"userId" firestore:"userId"`

	FirstName string `json:"firstName" firestore:"firstName"`
	LastName  string `json:"lastName" firestore:"lastName"`
	TeamName  string `json:"teamName" firestore:"teamName"`
	Email     string `json:"email" firestore:"email"`
	Phone     string `json:"phone" firestore:"phone"`
	TeamSize  string `json:"teamSize" firestore:"teamSize"`
	Content   string `json:"messageContent" firestore:"messageContent"`

	ContactMethod string `json:"contactMethod" firestore:"contactMethod"`
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.FirstName) == "" && strings.TrimSpace(m.LastName) == "" {
		return ErrInvalidMessage
	}
	if m.ContactMethod == MethodEmail && strings.TrimSpace(m.Email) == "" {
		return ErrInvalidMessage
	}
	return nil
}

// FullName joins first and last name for subjects and templates.
func (m Message) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(m.FirstName) + " " + strings.TrimSpace(m.LastName))
}
