// internal/domain/cart/denormalize.go
package cart

import (
	"fmt"
	"log"

	"radacycling/internal/domain/catalog"
	"radacycling/internal/domain/i18n"
	"radacycling/internal/domain/product"
)

// DenormalizedItem is an Item joined with its product and size category,
// ready for the cart screen. Never persisted.
type DenormalizedItem struct {
	ProductID      string  `json:"productId"`
	SizeID         string  `json:"sizeId,omitempty"`
	Quantity       int     `json:"quantity"`
	Name           string  `json:"name"`
	ImageURL       string  `json:"imageSrc"`
	Description    string  `json:"description"`
	Price          string  `json:"price"`
	UnitPrice      float64 `json:"unitPrice"`
	TotalItemPrice float64 `json:"totalItemPrice"`
	Href           string  `json:"href"`
}

// Adjustment records a quantity clamp discovered during denormalization.
// The caller decides whether to apply it to the canonical cart
// (State.ApplyAdjustments) and whether to surface the notice.
type Adjustment struct {
	ProductID string
	SizeID    string
	Name      string
	Available int
}

// Notice renders the buyer-facing stock message for the adjustment, with
// singular phrasing when exactly one unit remains.
func (a Adjustment) Notice(lang i18n.Lang) string {
	d := i18n.Dict(lang)
	verb, unit := d.ThereAre, d.UnitsLeft
	if a.Available == 1 {
		verb, unit = d.ThereIs, d.UnitLeft
	}
	return fmt.Sprintf("%s %d %s: %s", verb, a.Available, unit, a.Name)
}

// Denormalize joins cart items against current product and category data.
//
// Per line: a missing product drops the line; zero availability for the
// requested size drops the line; a quantity above availability is clamped in
// the returned view and reported as an Adjustment. The input items are not
// modified — callers keep the canonical cart in sync via ApplyAdjustments.
func Denormalize(items []Item, products []product.Product, categories []catalog.Category, lang i18n.Lang) ([]DenormalizedItem, []Adjustment) {
	d := i18n.Dict(lang)

	views := make([]DenormalizedItem, 0, len(items))
	var adjs []Adjustment

	for _, it := range items {
		p, ok := product.FindByID(products, it.ProductID)
		if !ok {
			log.Printf("[cart] product %q not found, dropping line", it.ProductID)
			continue
		}

		sizeID := NormalizeSizeID(it.SizeID)
		available := p.UnitsAvailable(sizeID)
		if available <= 0 {
			continue
		}

		name := p.Name.Pick(lang)
		if sizeID != NoSizeID {
			if c, found := catalog.FindByID(categories, sizeID); found {
				name = fmt.Sprintf("%s - %s %s", name, d.Size, c.Name.Pick(lang))
			}
		}

		qty := it.Quantity
		if qty > available {
			qty = available
			adjs = append(adjs, Adjustment{
				ProductID: it.ProductID,
				SizeID:    sizeID,
				Name:      name,
				Available: available,
			})
		}

		unit := product.ParsePrice(p.Price)

		imageURL := ""
		if len(p.ImageKeys) > 0 {
			imageURL = p.ImageKeys[0]
		}

		views = append(views, DenormalizedItem{
			ProductID:      it.ProductID,
			SizeID:         sizeID,
			Quantity:       qty,
			Name:           name,
			ImageURL:       imageURL,
			Description:    p.Description.Pick(lang),
			Price:          p.Price,
			UnitPrice:      unit,
			TotalItemPrice: unit * float64(qty),
			Href:           p.Href,
		})
	}

	return views, adjs
}
