// internal/adapters/out/firestore/message_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	messagedom "radacycling/internal/domain/message"
)

// MessageRepositoryFS archives inquiry-form submissions. Every submission is
// stored regardless of whether the outbound notification succeeds, so the
// archive is the source of truth for follow-up.
type MessageRepositoryFS struct {
	Client *firestore.Client
	Col    string
}

func NewMessageRepositoryFS(client *firestore.Client) *MessageRepositoryFS {
	return &MessageRepositoryFS{Client: client, Col: "messages"}
}

func (r *MessageRepositoryFS) col() *firestore.CollectionRef {
	c := strings.TrimSpace(r.Col)
	if c == "" {
		c = "messages"
	}
	return r.Client.Collection(c)
}

// Create stores a submission and returns its document ID.
func (r *MessageRepositoryFS) Create(ctx context.Context, m messagedom.Message) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("message_repository_fs: firestore client is nil")
	}
	if err := m.Validate(); err != nil {
		return "", fmt.Errorf("message_repository_fs: %w", err)
	}

	ref := r.col().NewDoc()
	m.ID = ref.ID

	data := map[string]any{
		"id":             m.ID,
		"userId":         m.UserID,
		"firstName":      m.FirstName,
		"lastName":       m.LastName,
		"teamName":       m.TeamName,
		"email":          m.Email,
		"phone":          m.Phone,
		"teamSize":       m.TeamSize,
		"messageContent": m.Content,
		"contactMethod":  m.ContactMethod,
		"createdAt":      time.Now().UTC(),
	}
	if _, err := ref.Set(ctx, data); err != nil {
		return "", fmt.Errorf("message_repository_fs: create: %w", err)
	}
	return ref.ID, nil
}

// ListAll returns every archived submission. Admin surface only.
func (r *MessageRepositoryFS) ListAll(ctx context.Context) ([]messagedom.Message, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("message_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []messagedom.Message
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var m messagedom.Message
		if derr := snap.DataTo(&m); derr != nil {
			log.Printf("[messages] skip doc %s: %v", snap.Ref.ID, derr)
			continue
		}
		if strings.TrimSpace(m.ID) == "" {
			m.ID = snap.Ref.ID
		}
		out = append(out, m)
	}
	return out, nil
}
