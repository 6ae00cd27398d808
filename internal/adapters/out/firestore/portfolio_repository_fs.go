// internal/adapters/out/firestore/portfolio_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	portfoliodom "radacycling/internal/domain/portfolio"
)

// PortfolioRepositoryFS reads the custom-work gallery collection.
type PortfolioRepositoryFS struct {
	Client *firestore.Client
	Col    string
}

func NewPortfolioRepositoryFS(client *firestore.Client) *PortfolioRepositoryFS {
	return &PortfolioRepositoryFS{Client: client, Col: "portfolio"}
}

func (r *PortfolioRepositoryFS) ListAll(ctx context.Context) ([]portfoliodom.Item, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("portfolio_repository_fs: firestore client is nil")
	}

	col := strings.TrimSpace(r.Col)
	if col == "" {
		col = "portfolio"
	}

	it := r.Client.Collection(col).Documents(ctx)
	defer it.Stop()

	var out []portfoliodom.Item
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var item portfoliodom.Item
		if derr := snap.DataTo(&item); derr != nil {
			log.Printf("[portfolio] skip doc %s: %v", snap.Ref.ID, derr)
			continue
		}
		if strings.TrimSpace(item.Src) == "" {
			log.Printf("[portfolio] skip doc %s: empty src", snap.Ref.ID)
			continue
		}
		out = append(out, item)
	}
	return out, nil
}
