// internal/adapters/out/firestore/review_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	reviewdom "radacycling/internal/domain/review"
)

// ReviewRepositoryFS reads customer reviews.
type ReviewRepositoryFS struct {
	Client *firestore.Client
	Col    string
}

func NewReviewRepositoryFS(client *firestore.Client) *ReviewRepositoryFS {
	return &ReviewRepositoryFS{Client: client, Col: "reviews"}
}

func (r *ReviewRepositoryFS) col() *firestore.CollectionRef {
	c := strings.TrimSpace(r.Col)
	if c == "" {
		c = "reviews"
	}
	return r.Client.Collection(c)
}

func (r *ReviewRepositoryFS) ListAll(ctx context.Context) ([]reviewdom.Review, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("review_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []reviewdom.Review
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var rv reviewdom.Review
		if derr := snap.DataTo(&rv); derr != nil {
			log.Printf("[reviews] skip doc %s: %v", snap.Ref.ID, derr)
			continue
		}
		out = append(out, rv)
	}
	return out, nil
}

// ListByProductID filters server-side so review-heavy catalogs do not ship
// every document to the instance.
func (r *ReviewRepositoryFS) ListByProductID(ctx context.Context, productID string) ([]reviewdom.Review, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("review_repository_fs: firestore client is nil")
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, errors.New("review_repository_fs: productID is empty")
	}

	it := r.col().Where("productId", "==", productID).Documents(ctx)
	defer it.Stop()

	var out []reviewdom.Review
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var rv reviewdom.Review
		if derr := snap.DataTo(&rv); derr != nil {
			log.Printf("[reviews] skip doc %s: %v", snap.Ref.ID, derr)
			continue
		}
		out = append(out, rv)
	}
	return out, nil
}
