// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	orderdom "radacycling/internal/domain/order"
)

// OrderRepositoryFS persists purchase records. Orders are append-only:
// fulfillment tooling may patch tracking fields later, the storefront never
// rewrites an order after creation.
type OrderRepositoryFS struct {
	Client *firestore.Client
	Col    string
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client, Col: "orders"}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	c := strings.TrimSpace(r.Col)
	if c == "" {
		c = "orders"
	}
	return r.Client.Collection(c)
}

// Create appends a new order and returns its document ID.
func (r *OrderRepositoryFS) Create(ctx context.Context, o orderdom.Order) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("order_repository_fs: firestore client is nil")
	}
	if err := o.Validate(); err != nil {
		return "", fmt.Errorf("order_repository_fs: %w", err)
	}

	ref := r.col().NewDoc()
	o.ID = ref.ID
	if _, err := ref.Set(ctx, o); err != nil {
		return "", fmt.Errorf("order_repository_fs: create: %w", err)
	}
	return ref.ID, nil
}

// ListByUserID returns the orders belonging to one account.
func (r *OrderRepositoryFS) ListByUserID(ctx context.Context, userID string) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.New("order_repository_fs: userID is empty")
	}

	it := r.col().Where("userId", "==", userID).Documents(ctx)
	defer it.Stop()
	return r.collect(it)
}

// ListAll returns every order. Admin surface only.
func (r *OrderRepositoryFS) ListAll(ctx context.Context) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()
	return r.collect(it)
}

func (r *OrderRepositoryFS) collect(it *firestore.DocumentIterator) ([]orderdom.Order, error) {
	var out []orderdom.Order
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var o orderdom.Order
		if derr := snap.DataTo(&o); derr != nil {
			log.Printf("[orders] skip doc %s: %v", snap.Ref.ID, derr)
			continue
		}
		if strings.TrimSpace(o.ID) == "" {
			o.ID = snap.Ref.ID
		}
		out = append(out, o)
	}
	return out, nil
}
