// internal/domain/product/product.go
package product

import (
	"errors"
	"math/rand"
	"strings"

	"radacycling/internal/domain/catalog"
	"radacycling/internal/domain/i18n"
)

var (
	ErrNotFound       = errors.New("product: not found")
	ErrInvalidProduct = errors.New("product: invalid")
)

// DetailRow is one label/value line of the product detail table.
// Rows are individually toggleable from admin tooling.
type DetailRow struct {
	ID      string    `json:"id" firestore:"id"`
	Label   i18n.Text `json:"label" firestore:"label"`
	Value   i18n.Text `json:"value" firestore:"value"`
	Enabled bool      `json:"status" firestore:"status"`
}

// SizeStock is per-size availability; ID is a size category ID.
type SizeStock struct {
	ID    string `json:"id" firestore:"id"`
	Name  string `json:"name" firestore:"name"`
	Units int    `json:"units" firestore:"units"`
}

// Stock is either a single unit count (size-agnostic products) or a per-size
// list. BySize wins when non-empty.
type Stock struct {
	Units  int         `json:"units" firestore:"units"`
	BySize []SizeStock `json:"bySize,omitempty" firestore:"bySize,omitempty"`
}

// UnitsFor returns the available units for the chosen size.
// With a flat count the size does not matter; with a per-size list an unknown
// sizeID means zero availability.
func (s Stock) UnitsFor(sizeID string) int {
	if len(s.BySize) == 0 {
		return s.Units
	}
	sizeID = strings.TrimSpace(sizeID)
	for _, opt := range s.BySize {
		if opt.ID == sizeID {
			return opt.Units
		}
	}
	return 0
}

// Product is one sellable item. A product family (color/size variants) shares
// VersionIDs; the MainVersion record represents the family in listings.
//
// ImageKeys hold raw object-store keys; resolved URLs are produced by the
// catalog query and never persisted.
type Product struct {
	ID          string      `json:"id" firestore:"id"`
	Name        i18n.Text   `json:"name" firestore:"name"`
	Status      bool        `json:"status" firestore:"status"`
	Description i18n.Text   `json:"description" firestore:"description"`
	Details     []DetailRow `json:"details" firestore:"details"`

	ImageKeys     []string  `json:"imageKeys" firestore:"imageKeys"`
	HoverImageKey string    `json:"hoverImageKey,omitempty" firestore:"hoverImageKey,omitempty"`
	ImageAlt      i18n.Text `json:"imageAlt" firestore:"imageAlt"`

	Price    string `json:"price" firestore:"price"`
	OldPrice string `json:"oldPrice,omitempty" firestore:"oldPrice,omitempty"`

	MainVersion bool     `json:"mainVersion" firestore:"mainVersion"`
	VersionIDs  []string `json:"versionsIds,omitempty" firestore:"versionsIds,omitempty"`

	Href        string   `json:"href" firestore:"href"`
	CategoryIDs []string `json:"categoryIds" firestore:"categoryIds"`

	Stock Stock `json:"unitsInStock" firestore:"unitsInStock"`
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalidProduct
	}
	if p.Name.IsZero() {
		return ErrInvalidProduct
	}
	return nil
}

// UnitsAvailable returns the purchasable quantity of p for sizeID.
func (p Product) UnitsAvailable(sizeID string) int {
	return p.Stock.UnitsFor(sizeID)
}

// FindByID returns the product with id, or ok=false.
func FindByID(products []Product, id string) (Product, bool) {
	id = strings.TrimSpace(id)
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FindByHref returns the product with href, or ok=false.
func FindByHref(products []Product, href string) (Product, bool) {
	href = strings.TrimSpace(href)
	for _, p := range products {
		if p.Href == href {
			return p, true
		}
	}
	return Product{}, false
}

// FindByIDs returns the products whose ID is in ids, preserving product-list order.
func FindByIDs(products []Product, ids []string) []Product {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[strings.TrimSpace(id)] = struct{}{}
	}
	out := make([]Product, 0, len(ids))
	for _, p := range products {
		if _, ok := want[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// FindByCategoryIDs returns main-version products carrying ALL of the given
// category IDs.
func FindByCategoryIDs(products []Product, categoryIDs []string) []Product {
	var out []Product
	for _, p := range products {
		if !p.MainVersion {
			continue
		}
		if containsAll(p.CategoryIDs, categoryIDs) {
			out = append(out, p)
		}
	}
	return out
}

// FindByCategoryHrefs resolves hrefs to category IDs, then filters like
// FindByCategoryIDs.
func FindByCategoryHrefs(products []Product, categories []catalog.Category, hrefs []string) []Product {
	ids := catalog.IDsFromHrefs(categories, hrefs)
	return FindByCategoryIDs(products, ids)
}

// FindSimilar samples up to count random main-version products excluding p and
// its variants, for "you may also like" rows.
func FindSimilar(products []Product, p Product, count int, rng *rand.Rand) []Product {
	var pool []Product
	for _, other := range products {
		if other.ID == p.ID || !other.MainVersion {
			continue
		}
		if contains(p.VersionIDs, other.ID) {
			continue
		}
		pool = append(pool, other)
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		if !contains(have, w) {
			return false
		}
	}
	return true
}
