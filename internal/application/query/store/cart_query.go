// internal/application/query/store/cart_query.go
package store

import (
	"context"
	"errors"

	dto "radacycling/internal/application/query/store/dto"
	cartdom "radacycling/internal/domain/cart"
	"radacycling/internal/domain/i18n"
	productdom "radacycling/internal/domain/product"
)

// CartQuery builds the cart screen: denormalized lines against live product
// data, with any quantity clamps applied back to the canonical cart.
type CartQuery struct {
	ProductRepo  ProductRepository
	CategoryRepo CategoryRepository
	Images       ImageResolver
}

func NewCartQuery(products ProductRepository, categories CategoryRepository, images ImageResolver) *CartQuery {
	return &CartQuery{
		ProductRepo:  products,
		CategoryRepo: categories,
		Images:       images,
	}
}

// View denormalizes the cart, applies resulting quantity adjustments to
// state, and returns the render payload with drained notices.
func (q *CartQuery) View(ctx context.Context, state *cartdom.State, lang i18n.Lang) (dto.CartDTO, error) {
	if q == nil || q.ProductRepo == nil || q.CategoryRepo == nil {
		return dto.CartDTO{}, errors.New("cart query: repo is nil")
	}
	if state == nil {
		return dto.CartDTO{}, errors.New("cart query: state is nil")
	}

	products, err := q.ProductRepo.ListAll(ctx)
	if err != nil {
		return dto.CartDTO{}, err
	}
	categories, err := q.CategoryRepo.ListAll(ctx)
	if err != nil {
		return dto.CartDTO{}, err
	}

	views, adjs := cartdom.Denormalize(state.Items(), products, categories, lang)
	state.ApplyAdjustments(adjs)

	total := 0.0
	for i := range views {
		total += views[i].TotalItemPrice
		views[i].ImageURL = q.lineImage(ctx, views[i], products)
	}

	return dto.CartDTO{
		Items:   views,
		Total:   total,
		Notices: state.DrainNotices(),
	}, nil
}

// lineImage swaps the raw key Denormalize left in the view for a servable
// URL, using the first product image and the standard fallback ladder.
func (q *CartQuery) lineImage(ctx context.Context, view cartdom.DenormalizedItem, products []productdom.Product) string {
	p, ok := productdom.FindByID(products, view.ProductID)
	if !ok || len(p.ImageKeys) == 0 {
		return ""
	}
	cq := CatalogQuery{Images: q.Images}
	return cq.resolveImage(ctx, productImageFolder, p.ImageKeys[0], p.Name.Pick(i18n.LangEN))
}
