// internal/adapters/out/firestore/category_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	catalogdom "radacycling/internal/domain/catalog"
)

// CategoryRepositoryFS reads the categories collection.
type CategoryRepositoryFS struct {
	Client *firestore.Client
	Col    string
}

func NewCategoryRepositoryFS(client *firestore.Client) *CategoryRepositoryFS {
	return &CategoryRepositoryFS{Client: client, Col: "categories"}
}

func (r *CategoryRepositoryFS) col() *firestore.CollectionRef {
	c := strings.TrimSpace(r.Col)
	if c == "" {
		c = "categories"
	}
	return r.Client.Collection(c)
}

// ListAll returns every category. Decode failures are logged and skipped.
func (r *CategoryRepositoryFS) ListAll(ctx context.Context) ([]catalogdom.Category, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("category_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []catalogdom.Category
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var c catalogdom.Category
		if derr := snap.DataTo(&c); derr != nil {
			log.Printf("[categories] skip doc %s: %v", snap.Ref.ID, derr)
			continue
		}
		if strings.TrimSpace(c.ID) == "" {
			c.ID = snap.Ref.ID
		}

		// Legacy dual-field documents: the db* key is canonical when present.
		raw := snap.Data()
		if strings.TrimSpace(c.ImageKey) == "" {
			if s := asString(raw["dbImageSrc"]); s != "" {
				c.ImageKey = s
			} else if s := asString(raw["imageSrc"]); s != "" {
				c.ImageKey = s
			}
		}
		if strings.TrimSpace(c.SmallImageKey) == "" {
			if s := asString(raw["dbSmallImageSrc"]); s != "" {
				c.SmallImageKey = s
			} else if s := asString(raw["smallImageSrc"]); s != "" {
				c.SmallImageKey = s
			}
		}

		out = append(out, c)
	}
	return out, nil
}

// GetByID returns (zero, ErrNotFound) for a missing document.
func (r *CategoryRepositoryFS) GetByID(ctx context.Context, id string) (catalogdom.Category, error) {
	if r == nil || r.Client == nil {
		return catalogdom.Category{}, errors.New("category_repository_fs: firestore client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return catalogdom.Category{}, errors.New("category_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return catalogdom.Category{}, catalogdom.ErrNotFound
		}
		return catalogdom.Category{}, err
	}

	var c catalogdom.Category
	if derr := snap.DataTo(&c); derr != nil {
		return catalogdom.Category{}, derr
	}
	if strings.TrimSpace(c.ID) == "" {
		c.ID = snap.Ref.ID
	}
	return c, nil
}
