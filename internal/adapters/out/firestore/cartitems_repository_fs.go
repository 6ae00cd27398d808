// internal/adapters/out/firestore/cartitems_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	cartdom "radacycling/internal/domain/cart"
)

// CartItemsRepositoryFS mirrors a signed-in user's cart to
// users/{uid}/cartItems, one document per cart line.
type CartItemsRepositoryFS struct {
	Client   *firestore.Client
	UsersCol string
	ItemsCol string
}

func NewCartItemsRepositoryFS(client *firestore.Client) *CartItemsRepositoryFS {
	return &CartItemsRepositoryFS{Client: client, UsersCol: "users", ItemsCol: "cartItems"}
}

func (r *CartItemsRepositoryFS) items(userID string) *firestore.CollectionRef {
	users := strings.TrimSpace(r.UsersCol)
	if users == "" {
		users = "users"
	}
	items := strings.TrimSpace(r.ItemsCol)
	if items == "" {
		items = "cartItems"
	}
	return r.Client.Collection(users).Doc(userID).Collection(items)
}

func (r *CartItemsRepositoryFS) check(userID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cartitems_repository_fs: firestore client is nil")
	}
	if strings.TrimSpace(userID) == "" {
		return errors.New("cartitems_repository_fs: userID is empty")
	}
	return nil
}

// List returns the stored cart lines with DocID populated, so callers can
// diff the persisted state against the in-memory cart.
func (r *CartItemsRepositoryFS) List(ctx context.Context, userID string) ([]cartdom.Item, error) {
	if err := r.check(userID); err != nil {
		return nil, err
	}

	it := r.items(userID).Documents(ctx)
	defer it.Stop()

	var out []cartdom.Item
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var item cartdom.Item
		if derr := snap.DataTo(&item); derr != nil {
			log.Printf("[cart] skip doc %s for user %s: %v", snap.Ref.ID, userID, derr)
			continue
		}
		item.SizeID = cartdom.NormalizeSizeID(item.SizeID)
		item.DocID = snap.Ref.ID
		out = append(out, item)
	}
	return out, nil
}

// Add writes a new cart line and returns its document ID.
func (r *CartItemsRepositoryFS) Add(ctx context.Context, userID string, item cartdom.Item) (string, error) {
	if err := r.check(userID); err != nil {
		return "", err
	}
	if strings.TrimSpace(item.ProductID) == "" {
		return "", cartdom.ErrInvalidItem
	}
	item.SizeID = cartdom.NormalizeSizeID(item.SizeID)

	ref := r.items(userID).NewDoc()
	if _, err := ref.Set(ctx, item); err != nil {
		return "", fmt.Errorf("cartitems_repository_fs: add: %w", err)
	}
	return ref.ID, nil
}

// Update overwrites the quantity of an existing cart line.
func (r *CartItemsRepositoryFS) Update(ctx context.Context, userID, docID string, quantity int) error {
	if err := r.check(userID); err != nil {
		return err
	}
	docID = strings.TrimSpace(docID)
	if docID == "" {
		return errors.New("cartitems_repository_fs: docID is empty")
	}

	_, err := r.items(userID).Doc(docID).Update(ctx, []firestore.Update{
		{Path: "quantity", Value: quantity},
	})
	if err != nil {
		if isNotFound(err) {
			return cartdom.ErrNotFound
		}
		return fmt.Errorf("cartitems_repository_fs: update %s: %w", docID, err)
	}
	return nil
}

// Delete removes a cart line. Deleting a missing document is not an error.
func (r *CartItemsRepositoryFS) Delete(ctx context.Context, userID, docID string) error {
	if err := r.check(userID); err != nil {
		return err
	}
	docID = strings.TrimSpace(docID)
	if docID == "" {
		return errors.New("cartitems_repository_fs: docID is empty")
	}

	if _, err := r.items(userID).Doc(docID).Delete(ctx); err != nil && !isNotFound(err) {
		return fmt.Errorf("cartitems_repository_fs: delete %s: %w", docID, err)
	}
	return nil
}
