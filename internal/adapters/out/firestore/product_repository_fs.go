// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	productdom "radacycling/internal/domain/product"
)

// ProductRepositoryFS reads the products collection.
//
// Collection design:
// - collection: products
// - docId: product id
// - unitsInStock is stored either as a bare number (legacy, size-agnostic) or
//   as a list of {id, name, units}; decoding handles both shapes.
type ProductRepositoryFS struct {
	Client *firestore.Client
	Col    string
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client, Col: "products"}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	c := strings.TrimSpace(r.Col)
	if c == "" {
		c = "products"
	}
	return r.Client.Collection(c)
}

// ListAll returns every product document. Documents that fail to decode are
// logged and skipped, never abort the snapshot.
func (r *ProductRepositoryFS) ListAll(ctx context.Context) ([]productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []productdom.Product
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		p, derr := productFromSnapshot(snap)
		if derr != nil {
			log.Printf("[products] skip doc %s: %v", snap.Ref.ID, derr)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// GetByID returns (zero, ErrNotFound) for a missing document.
func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	if r == nil || r.Client == nil {
		return productdom.Product{}, errors.New("product_repository_fs: firestore client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, errors.New("product_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, err
	}
	return productFromSnapshot(snap)
}

// Upsert overwrites the full document (admin seeding path).
func (r *ProductRepositoryFS) Upsert(ctx context.Context, p productdom.Product) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	_, err := r.col().Doc(p.ID).Set(ctx, p)
	return err
}

// productFromSnapshot decodes with backward compatibility for the stock field
// and the legacy image-field names (imageSources / dbImageSources).
func productFromSnapshot(snap *firestore.DocumentSnapshot) (productdom.Product, error) {
	if snap == nil {
		return productdom.Product{}, errors.New("product_repository_fs: snapshot is nil")
	}

	var p productdom.Product
	if err := snap.DataTo(&p); err == nil && strings.TrimSpace(p.ID) != "" {
		normalizeProduct(&p, snap)
		return p, nil
	}

	// Fallback: decode field-by-field from raw data (schema drift).
	raw := snap.Data()
	if raw == nil {
		return productdom.Product{}, errors.New("product_repository_fs: empty document")
	}
	p = productdom.Product{ID: snap.Ref.ID}
	if v, ok := raw["href"]; ok {
		p.Href = asString(v)
	}
	if v, ok := raw["price"]; ok {
		p.Price = asString(v)
	}
	normalizeProduct(&p, snap)
	if strings.TrimSpace(p.ID) == "" {
		return productdom.Product{}, errors.New("product_repository_fs: document has no id")
	}
	return p, nil
}

func normalizeProduct(p *productdom.Product, snap *firestore.DocumentSnapshot) {
	if strings.TrimSpace(p.ID) == "" {
		p.ID = snap.Ref.ID
	}

	raw := snap.Data()

	// Legacy documents carried resolved URLs in imageSources and the raw keys
	// in dbImageSources; the raw key is canonical here.
	if len(p.ImageKeys) == 0 {
		if keys := stringSlice(raw["dbImageSources"]); len(keys) > 0 {
			p.ImageKeys = keys
		} else if keys := stringSlice(raw["imageSources"]); len(keys) > 0 {
			p.ImageKeys = keys
		}
	}
	if strings.TrimSpace(p.HoverImageKey) == "" {
		if s := asString(raw["dbImageHoverSource"]); s != "" {
			p.HoverImageKey = s
		} else if s := asString(raw["imageHoverSource"]); s != "" {
			p.HoverImageKey = s
		}
	}

	// unitsInStock: bare number (legacy) or {units, bySize}.
	if v, ok := raw["unitsInStock"]; ok {
		switch t := v.(type) {
		case int64:
			p.Stock = productdom.Stock{Units: int(t)}
		case float64:
			p.Stock = productdom.Stock{Units: int(t)}
		case []any:
			var bySize []productdom.SizeStock
			for _, e := range t {
				m, ok := e.(map[string]any)
				if !ok {
					continue
				}
				bySize = append(bySize, productdom.SizeStock{
					ID:    strings.TrimSpace(asString(m["id"])),
					Name:  strings.TrimSpace(asString(m["name"])),
					Units: asInt(m["units"]),
				})
			}
			p.Stock = productdom.Stock{BySize: bySize}
		}
	}
}

func stringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s := asString(e); s != "" {
			out = append(out, s)
		}
	}
	return out
}
