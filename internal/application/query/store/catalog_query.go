// internal/application/query/store/catalog_query.go
package store

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"sync"

	"radacycling/internal/adapters/out/placeholder"
	dto "radacycling/internal/application/query/store/dto"
	catalogdom "radacycling/internal/domain/catalog"
	"radacycling/internal/domain/i18n"
	portfoliodom "radacycling/internal/domain/portfolio"
	productdom "radacycling/internal/domain/product"
	reviewdom "radacycling/internal/domain/review"
)

// ErrNotFound is a shared sentinel for "not found" in store queries.
// Handlers may check with errors.Is(err, store.ErrNotFound).
var ErrNotFound = errors.New("not_found")

// Storage folders for catalog objects.
const (
	productImageFolder  = "products"
	categoryImageFolder = "categories"
	galleryImageFolder  = "portfolio"
)

// ProductRepository is the read port for product documents.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]productdom.Product, error)
	GetByID(ctx context.Context, id string) (productdom.Product, error)
}

// CategoryRepository is the read port for category documents.
type CategoryRepository interface {
	ListAll(ctx context.Context) ([]catalogdom.Category, error)
}

// PortfolioRepository is the read port for the custom-work gallery.
type PortfolioRepository interface {
	ListAll(ctx context.Context) ([]portfoliodom.Item, error)
}

// ReviewRepository is the read port for customer reviews.
type ReviewRepository interface {
	ListAll(ctx context.Context) ([]reviewdom.Review, error)
	ListByProductID(ctx context.Context, productID string) ([]reviewdom.Review, error)
}

// ImageResolver turns a raw object name into a servable URL, or ("", nil)
// when the object does not exist.
type ImageResolver interface {
	ResolveURL(ctx context.Context, objectName string) (string, error)
}

// CatalogQuery assembles the storefront read models: products, categories,
// menus, and the gallery, with every raw storage key resolved to a URL.
type CatalogQuery struct {
	ProductRepo   ProductRepository
	CategoryRepo  CategoryRepository
	PortfolioRepo PortfolioRepository
	ReviewRepo    ReviewRepository
	Images        ImageResolver
}

func NewCatalogQuery(
	products ProductRepository,
	categories CategoryRepository,
	portfolio PortfolioRepository,
	reviews ReviewRepository,
	images ImageResolver,
) *CatalogQuery {
	return &CatalogQuery{
		ProductRepo:   products,
		CategoryRepo:  categories,
		PortfolioRepo: portfolio,
		ReviewRepo:    reviews,
		Images:        images,
	}
}

// resolveImage walks the fallback ladder for one key: resolved storage URL,
// then a generated letter tile named after the item, then empty.
func (q *CatalogQuery) resolveImage(ctx context.Context, folder, key, itemName string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	objectName := folder + "/" + strings.TrimLeft(key, "/")

	if q.Images != nil {
		u, err := q.Images.ResolveURL(ctx, objectName)
		if err != nil {
			log.Printf("[catalog] resolve %s failed: %v", objectName, err)
		} else if u != "" {
			return u
		}
	}

	if tile := placeholder.LetterPNGDataURI(itemName); tile != "" {
		return tile
	}
	return ""
}

// productImages resolves every image key of one product concurrently,
// preserving key order. The hover image rides in the same fan-out.
func (q *CatalogQuery) productImages(ctx context.Context, p productdom.Product) (urls []string, hover string) {
	name := p.Name.Pick(i18n.LangEN)

	urls = make([]string, len(p.ImageKeys))
	var wg sync.WaitGroup
	for i, key := range p.ImageKeys {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			urls[i] = q.resolveImage(ctx, productImageFolder, key, name)
		}(i, key)
	}
	if strings.TrimSpace(p.HoverImageKey) != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hover = q.resolveImage(ctx, productImageFolder, p.HoverImageKey, name)
		}()
	}
	wg.Wait()

	return urls, hover
}

func (q *CatalogQuery) toProductDTO(ctx context.Context, p productdom.Product, lang i18n.Lang) dto.ProductDTO {
	urls, hover := q.productImages(ctx, p)

	details := make([]dto.DetailRowDTO, 0, len(p.Details))
	for _, d := range p.Details {
		details = append(details, dto.DetailRowDTO{
			Label:   d.Label.Pick(lang),
			Value:   d.Value.Pick(lang),
			Enabled: d.Enabled,
		})
	}

	return dto.ProductDTO{
		ID:            p.ID,
		Name:          p.Name.Pick(lang),
		Description:   p.Description.Pick(lang),
		Details:       details,
		ImageURLs:     urls,
		HoverImageURL: hover,
		ImageAlt:      p.ImageAlt.Pick(lang),
		Price:         p.Price,
		OldPrice:      p.OldPrice,
		MainVersion:   p.MainVersion,
		VersionIDs:    p.VersionIDs,
		Href:          p.Href,
		CategoryIDs:   p.CategoryIDs,
		Stock:         p.Stock,
	}
}

// ListProducts returns every main-version product. Products are processed
// sequentially; only image resolution inside one product fans out.
func (q *CatalogQuery) ListProducts(ctx context.Context, lang i18n.Lang) ([]dto.ProductDTO, error) {
	if q == nil || q.ProductRepo == nil {
		return nil, errors.New("catalog query: product repo is nil")
	}

	products, err := q.ProductRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		if !p.MainVersion {
			continue
		}
		out = append(out, q.toProductDTO(ctx, p, lang))
	}
	return out, nil
}

// ListProductsByCategoryHrefs returns main-version products carrying every
// category named by hrefs.
func (q *CatalogQuery) ListProductsByCategoryHrefs(ctx context.Context, hrefs []string, lang i18n.Lang) ([]dto.ProductDTO, error) {
	if q == nil || q.ProductRepo == nil || q.CategoryRepo == nil {
		return nil, errors.New("catalog query: repo is nil")
	}

	products, err := q.ProductRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := q.CategoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := productdom.FindByCategoryHrefs(products, categories, hrefs)
	out := make([]dto.ProductDTO, 0, len(matched))
	for _, p := range matched {
		if !p.MainVersion {
			continue
		}
		out = append(out, q.toProductDTO(ctx, p, lang))
	}
	return out, nil
}

// GetProductByHref returns one product with reviews, size categories, and a
// similar-products sample attached.
func (q *CatalogQuery) GetProductByHref(ctx context.Context, href string, lang i18n.Lang, rng *rand.Rand) (dto.ProductDTO, error) {
	if q == nil || q.ProductRepo == nil {
		return dto.ProductDTO{}, errors.New("catalog query: product repo is nil")
	}

	products, err := q.ProductRepo.ListAll(ctx)
	if err != nil {
		return dto.ProductDTO{}, err
	}
	p, ok := productdom.FindByHref(products, href)
	if !ok {
		return dto.ProductDTO{}, ErrNotFound
	}

	out := q.toProductDTO(ctx, p, lang)

	// Reviews and sizes are best-effort: a read failure degrades the page,
	// it does not 500 it.
	if q.ReviewRepo != nil {
		reviews, rerr := q.ReviewRepo.ListByProductID(ctx, p.ID)
		if rerr != nil {
			log.Printf("[catalog] reviews for %s failed: %v", p.ID, rerr)
		} else {
			out.Reviews = reviews
			if avg, okAvg := reviewdom.AverageRating(reviews); okAvg {
				out.AverageRating = avg
			}
		}
	}

	if q.CategoryRepo != nil {
		categories, cerr := q.CategoryRepo.ListAll(ctx)
		if cerr != nil {
			log.Printf("[catalog] categories for %s failed: %v", p.ID, cerr)
		} else {
			out.Sizes = q.sizeCategories(ctx, p, categories, lang)
		}
	}

	for _, sim := range productdom.FindSimilar(products, p, 4, rng) {
		out.Similar = append(out.Similar, q.toProductDTO(ctx, sim, lang))
	}

	return out, nil
}

// sizeCategories returns the size categories the product is offered in,
// following the catalog's size-option order.
func (q *CatalogQuery) sizeCategories(ctx context.Context, p productdom.Product, categories []catalogdom.Category, lang i18n.Lang) []dto.CategoryDTO {
	var out []dto.CategoryDTO
	for _, sizeID := range catalogdom.SizeCategoryIDs() {
		if p.UnitsAvailable(sizeID) <= 0 {
			continue
		}
		c, ok := catalogdom.FindByID(categories, sizeID)
		if !ok {
			continue
		}
		out = append(out, q.toCategoryDTO(ctx, c, lang))
	}
	return out
}

func (q *CatalogQuery) toCategoryDTO(ctx context.Context, c catalogdom.Category, lang i18n.Lang) dto.CategoryDTO {
	name := c.Name.Pick(i18n.LangEN)

	var imageURL, smallURL string
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		imageURL = q.resolveImage(ctx, categoryImageFolder, c.ImageKey, name)
	}()
	if strings.TrimSpace(c.SmallImageKey) != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			smallURL = q.resolveImage(ctx, categoryImageFolder, c.SmallImageKey, name)
		}()
	}
	wg.Wait()

	return dto.CategoryDTO{
		ID:            c.ID,
		Name:          c.Name.Pick(lang),
		Description:   c.Description.Pick(lang),
		ImageURL:      imageURL,
		SmallImageURL: smallURL,
		ImageAlt:      c.ImageAlt.Pick(lang),
		Href:          c.Href,
	}
}

// ListCategories returns every category with resolved images.
func (q *CatalogQuery) ListCategories(ctx context.Context, lang i18n.Lang) ([]dto.CategoryDTO, error) {
	if q == nil || q.CategoryRepo == nil {
		return nil, errors.New("catalog query: category repo is nil")
	}

	categories, err := q.CategoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, q.toCategoryDTO(ctx, c, lang))
	}
	return out, nil
}

// Menu returns the navigation menu identified by menuID with its category
// IDs expanded against live category data.
func (q *CatalogQuery) Menu(ctx context.Context, menuID string, lang i18n.Lang) (catalogdom.CatalogCategory, error) {
	if q == nil || q.CategoryRepo == nil {
		return catalogdom.CatalogCategory{}, errors.New("catalog query: category repo is nil")
	}

	menu, ok := catalogdom.FindMenuByID(menuID)
	if !ok {
		return catalogdom.CatalogCategory{}, ErrNotFound
	}

	categories, err := q.CategoryRepo.ListAll(ctx)
	if err != nil {
		return catalogdom.CatalogCategory{}, err
	}
	return catalogdom.DenormalizeCatalogCategory(menu, categories), nil
}

// ListPortfolio returns the custom-work gallery.
func (q *CatalogQuery) ListPortfolio(ctx context.Context, lang i18n.Lang) ([]dto.PortfolioItemDTO, error) {
	if q == nil || q.PortfolioRepo == nil {
		return nil, errors.New("catalog query: portfolio repo is nil")
	}

	items, err := q.PortfolioRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PortfolioItemDTO, 0, len(items))
	for _, it := range items {
		d := dto.PortfolioItemDTO{
			URL: q.resolveImage(ctx, galleryImageFolder, it.Src, pickOptional(it.Title, lang)),
		}
		if it.Alt != nil {
			d.Alt = it.Alt.Pick(lang)
		}
		if it.Title != nil {
			d.Title = it.Title.Pick(lang)
		}
		if it.Description != nil {
			d.Description = it.Description.Pick(lang)
		}
		out = append(out, d)
	}
	return out, nil
}

// ListReviews returns every review for one product.
func (q *CatalogQuery) ListReviews(ctx context.Context, productID string) ([]reviewdom.Review, error) {
	if q == nil || q.ReviewRepo == nil {
		return nil, errors.New("catalog query: review repo is nil")
	}
	return q.ReviewRepo.ListByProductID(ctx, productID)
}

func pickOptional(t *i18n.Text, lang i18n.Lang) string {
	if t == nil {
		return ""
	}
	return t.Pick(lang)
}
