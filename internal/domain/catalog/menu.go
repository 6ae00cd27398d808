// internal/domain/catalog/menu.go
package catalog

import (
	"log"
	"strings"

	"radacycling/internal/domain/i18n"
)

// CatalogSection groups category IDs under a named heading inside a catalog menu.
// The canonical stored form keeps only IDs; Categories is filled transiently by
// the denormalize functions and never written back.
type CatalogSection struct {
	Name        i18n.Text  `json:"name" firestore:"name"`
	CategoryIDs []string   `json:"categoryIds" firestore:"categoryIds"`
	Categories  []Category `json:"categories,omitempty" firestore:"-"`
}

// CatalogCategory is a top-level navigation menu (men / women).
type CatalogCategory struct {
	ID                 string           `json:"id" firestore:"id"`
	Href               string           `json:"href" firestore:"href"`
	Name               i18n.Text        `json:"name" firestore:"name"`
	FeaturedCategoryID string           `json:"featuredCategoryId,omitempty" firestore:"featuredCategoryId,omitempty"`
	FeaturedCategory   *Category        `json:"featuredCategory,omitempty" firestore:"-"`
	Sections           []CatalogSection `json:"sections" firestore:"sections"`
}

// Menus is the static navigation definition. Category IDs are expanded against
// the live category list at render time.
var Menus = []CatalogCategory{
	{
		ID:   "menmenu",
		Name: i18n.Text{EN: "men", ES: "hombres"},
		Href: "men",
		Sections: []CatalogSection{
			{
				Name:        i18n.Text{EN: "apparel", ES: "ropa"},
				CategoryIDs: []string{"1", "2", "6"},
			},
		},
	},
	{
		ID:   "womenmenu",
		Name: i18n.Text{EN: "women", ES: "mujeres"},
		Href: "women",
		Sections: []CatalogSection{
			{
				Name:        i18n.Text{EN: "apparel", ES: "ropa"},
				CategoryIDs: []string{"1", "2", "6"},
			},
		},
	},
}

// FeaturedCategoryIDs are highlighted on the landing page (men / women).
var FeaturedCategoryIDs = []string{"7", "15"}

// SizeOption is a selectable size backed by a category document.
type SizeOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var SizeOptions = []SizeOption{
	{ID: "16", Name: "XS"},
	{ID: "17", Name: "S"},
	{ID: "18", Name: "M"},
	{ID: "19", Name: "L"},
	{ID: "20", Name: "XL"},
	{ID: "21", Name: "XXL"},
}

// SizeCategoryIDs lists the category IDs backing SizeOptions, in order.
func SizeCategoryIDs() []string {
	ids := make([]string, 0, len(SizeOptions))
	for _, o := range SizeOptions {
		ids = append(ids, o.ID)
	}
	return ids
}

// FindMenuByID returns the static menu with id, or ok=false.
func FindMenuByID(id string) (CatalogCategory, bool) {
	id = strings.TrimSpace(id)
	for _, m := range Menus {
		if m.ID == id {
			return m, true
		}
	}
	return CatalogCategory{}, false
}

// FindSectionByName returns the first section across all menus whose name in
// lang matches sectionName.
func FindSectionByName(sectionName string, lang i18n.Lang) (CatalogSection, bool) {
	for _, m := range Menus {
		for _, s := range m.Sections {
			if s.Name.Pick(lang) == sectionName {
				return s, true
			}
		}
	}
	return CatalogSection{}, false
}

// DenormalizeCategories expands category IDs into full Category values.
// A missing ID is logged and dropped, never substituted with a placeholder,
// so the output may be shorter than the input.
func DenormalizeCategories(ids []string, categories []Category) []Category {
	out := make([]Category, 0, len(ids))
	for _, id := range ids {
		c, ok := FindByID(categories, id)
		if !ok {
			log.Printf("[menu] category %q not found", id)
			continue
		}
		out = append(out, c)
	}
	return out
}

// DenormalizeCatalogCategory fills Sections[].Categories and FeaturedCategory
// from the current category list. The input value is not modified.
func DenormalizeCatalogCategory(menu CatalogCategory, categories []Category) CatalogCategory {
	sections := make([]CatalogSection, 0, len(menu.Sections))
	for _, s := range menu.Sections {
		s.Categories = DenormalizeCategories(s.CategoryIDs, categories)
		sections = append(sections, s)
	}
	menu.Sections = sections

	if strings.TrimSpace(menu.FeaturedCategoryID) != "" {
		if c, ok := FindByID(categories, menu.FeaturedCategoryID); ok {
			menu.FeaturedCategory = &c
		} else {
			log.Printf("[menu] featured category %q not found", menu.FeaturedCategoryID)
		}
	}

	return menu
}
