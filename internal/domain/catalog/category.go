// internal/domain/catalog/category.go
package catalog

import (
	"errors"
	"strings"

	"radacycling/internal/domain/i18n"
)

var (
	ErrNotFound        = errors.New("catalog: category not found")
	ErrInvalidCategory = errors.New("catalog: invalid category")
)

// Category is a catalog grouping (apparel type, gender, size option).
//
// Image fields hold RAW object-store keys only; resolution to fetchable URLs
// happens at read time in the catalog query. The legacy dual-field storage
// (resolved URL + source key on the same document) is not carried over.
type Category struct {
	ID string `json:"id" firestore:"id"`

	ImageKey      string    `json:"imageKey" firestore:"imageKey"`
	SmallImageKey string    `json:"smallImageKey,omitempty" firestore:"smallImageKey,omitempty"`
	ImageAlt      i18n.Text `json:"imageAlt" firestore:"imageAlt"`

	Name        i18n.Text `json:"name" firestore:"name"`
	Description i18n.Text `json:"description" firestore:"description"`
	Href        string    `json:"href" firestore:"href"`

	// GenderSpecific categories render under a gendered catalog path.
	GenderSpecific bool `json:"genderSpecific" firestore:"genderSpecific"`
	// SizeAgnostic categories (socks, bottles) skip the size picker.
	SizeAgnostic bool `json:"sizeAgnostic" firestore:"sizeAgnostic"`
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrInvalidCategory
	}
	if c.Name.IsZero() {
		return ErrInvalidCategory
	}
	return nil
}

// FindByID returns the category with id, or ok=false.
func FindByID(categories []Category, id string) (Category, bool) {
	id = strings.TrimSpace(id)
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FindByHref returns the category with href, or ok=false.
func FindByHref(categories []Category, href string) (Category, bool) {
	href = strings.TrimSpace(href)
	for _, c := range categories {
		if c.Href == href {
			return c, true
		}
	}
	return Category{}, false
}

// IDsFromHrefs maps hrefs to category IDs, dropping hrefs that resolve to nothing.
func IDsFromHrefs(categories []Category, hrefs []string) []string {
	out := make([]string, 0, len(hrefs))
	for _, h := range hrefs {
		if c, ok := FindByHref(categories, h); ok {
			out = append(out, c.ID)
		}
	}
	return out
}

// HrefsFromIDs maps category IDs to hrefs, dropping IDs that resolve to nothing.
func HrefsFromIDs(categories []Category, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if c, ok := FindByID(categories, id); ok {
			out = append(out, c.Href)
		}
	}
	return out
}

// NamesFromIDs maps category IDs to display names in lang, dropping unknown IDs.
func NamesFromIDs(categories []Category, ids []string, lang i18n.Lang) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if c, ok := FindByID(categories, id); ok {
			out = append(out, c.Name.Pick(lang))
		}
	}
	return out
}
