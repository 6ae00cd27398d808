// internal/application/usecase/contact_usecase_test.go
package usecase_test

import (
	"context"
	"errors"
	"testing"

	"radacycling/internal/application/usecase"
	messagedom "radacycling/internal/domain/message"
)

type fakeMailer struct {
	sent []messagedom.Message
	err  error
}

func (f *fakeMailer) SendInquiryEmail(ctx context.Context, m messagedom.Message) error {
	f.sent = append(f.sent, m)
	return f.err
}

type fakeWhatsApp struct {
	calls int
	name  string
	err   error
}

func (f *fakeWhatsApp) SendGearRequest(ctx context.Context, name, team, phone, teamSize, content string) error {
	f.calls++
	f.name = name
	return f.err
}

type fakeMessageWriter struct {
	archived []messagedom.Message
	err      error
}

func (f *fakeMessageWriter) Create(ctx context.Context, m messagedom.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.archived = append(f.archived, m)
	return "msg-1", nil
}

func validInquiry(method string) messagedom.Message {
	return messagedom.Message{
		FirstName:     "Ana",
		LastName:      "Ríos",
		TeamName:      "Vuelta CC",
		Email:         "ana@example.com",
		Phone:         "+34600000000",
		ContactMethod: method,
		Content:       "20 custom jerseys",
	}
}

func TestSubmitRoutesEmailMethodToMailer(t *testing.T) {
	mailer := &fakeMailer{}
	wa := &fakeWhatsApp{}
	writer := &fakeMessageWriter{}
	u := usecase.NewContactUsecase(mailer, wa, writer)

	id, err := u.Submit(context.Background(), validInquiry("Email"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if id != "msg-1" {
		t.Fatalf("id = %q", id)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("mailer sent %d, want 1", len(mailer.sent))
	}
	if wa.calls != 0 {
		t.Fatalf("whatsapp called %d times, want 0", wa.calls)
	}
}

func TestSubmitDefaultsToWhatsApp(t *testing.T) {
	mailer := &fakeMailer{}
	wa := &fakeWhatsApp{}
	u := usecase.NewContactUsecase(mailer, wa, &fakeMessageWriter{})

	if _, err := u.Submit(context.Background(), validInquiry("whatsapp")); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if wa.calls != 1 || len(mailer.sent) != 0 {
		t.Fatalf("wa=%d mailer=%d, want whatsapp only", wa.calls, len(mailer.sent))
	}
	if wa.name != "Ana Ríos" {
		t.Fatalf("whatsapp name = %q", wa.name)
	}

	// An unrecognized method also routes to WhatsApp.
	if _, err := u.Submit(context.Background(), validInquiry("carrier pigeon")); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if wa.calls != 2 {
		t.Fatalf("wa calls = %d, want 2", wa.calls)
	}
}

func TestSubmitArchivesBeforeNotifying(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	writer := &fakeMessageWriter{}
	u := usecase.NewContactUsecase(mailer, &fakeWhatsApp{}, writer)

	id, err := u.Submit(context.Background(), validInquiry("email"))
	if err == nil {
		t.Fatal("notify failure not surfaced")
	}
	if id != "msg-1" {
		t.Fatalf("id = %q, want the archived doc ID despite the notify failure", id)
	}
	if len(writer.archived) != 1 {
		t.Fatalf("archived %d, want 1", len(writer.archived))
	}
}

func TestSubmitArchiveFailureAborts(t *testing.T) {
	mailer := &fakeMailer{}
	writer := &fakeMessageWriter{err: errors.New("firestore down")}
	u := usecase.NewContactUsecase(mailer, &fakeWhatsApp{}, writer)

	if _, err := u.Submit(context.Background(), validInquiry("email")); err == nil {
		t.Fatal("archive failure not surfaced")
	}
	if len(mailer.sent) != 0 {
		t.Fatal("notification sent despite failed archive")
	}
}

func TestSubmitRejectsInvalidMessage(t *testing.T) {
	u := usecase.NewContactUsecase(&fakeMailer{}, &fakeWhatsApp{}, &fakeMessageWriter{})
	_, err := u.Submit(context.Background(), messagedom.Message{ContactMethod: "email"})
	if !errors.Is(err, messagedom.ErrInvalidMessage) {
		t.Fatalf("err = %v, want ErrInvalidMessage", err)
	}
}
