// internal/adapters/in/http/store/handler/catalog_handler.go
package storeHandler

import (
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	storequery "radacycling/internal/application/query/store"
)

// CatalogHandler serves buyer-facing catalog endpoints.
//
// Routes:
// - GET /store/products            (?category=href&category=href)
// - GET /store/products/{href}
type CatalogHandler struct {
	Q *storequery.CatalogQuery

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewCatalogHandler(q *storequery.CatalogQuery) http.Handler {
	return &CatalogHandler{
		Q:   q,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Q == nil {
		internalError(w, "catalog handler is not ready")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	lang := langFrom(r)
	path := strings.TrimSuffix(r.URL.Path, "/")

	if href := tailSegment(path, "/store/products/"); href != "" {
		h.rngMu.Lock()
		rng := h.rng
		h.rngMu.Unlock()

		dto, err := h.Q.GetProductByHref(r.Context(), href, lang, rng)
		if err != nil {
			if errors.Is(err, storequery.ErrNotFound) {
				notFound(w)
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, dto)
		return
	}

	if hrefs := r.URL.Query()["category"]; len(hrefs) > 0 {
		dtos, err := h.Q.ListProductsByCategoryHrefs(r.Context(), hrefs, lang)
		if err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, dtos)
		return
	}

	dtos, err := h.Q.ListProducts(r.Context(), lang)
	if err != nil {
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CategoryHandler serves category listings and menus.
//
// Routes:
// - GET /store/categories
// - GET /store/menus/{menuId}
type CategoryHandler struct {
	Q *storequery.CatalogQuery
}

func NewCategoryHandler(q *storequery.CatalogQuery) http.Handler {
	return &CategoryHandler{Q: q}
}

func (h *CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Q == nil {
		internalError(w, "category handler is not ready")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	lang := langFrom(r)
	path := strings.TrimSuffix(r.URL.Path, "/")

	if menuID := tailSegment(path, "/store/menus/"); menuID != "" {
		menu, err := h.Q.Menu(r.Context(), menuID, lang)
		if err != nil {
			if errors.Is(err, storequery.ErrNotFound) {
				notFound(w)
				return
			}
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, menu)
		return
	}

	dtos, err := h.Q.ListCategories(r.Context(), lang)
	if err != nil {
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

// PortfolioHandler serves the custom-work gallery.
//
// Routes:
// - GET /store/portfolio
type PortfolioHandler struct {
	Q *storequery.CatalogQuery
}

func NewPortfolioHandler(q *storequery.CatalogQuery) http.Handler {
	return &PortfolioHandler{Q: q}
}

func (h *PortfolioHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Q == nil {
		internalError(w, "portfolio handler is not ready")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	dtos, err := h.Q.ListPortfolio(r.Context(), langFrom(r))
	if err != nil {
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ReviewHandler serves reviews for one product.
//
// Routes:
// - GET /store/reviews/{productId}
type ReviewHandler struct {
	Q *storequery.CatalogQuery
}

func NewReviewHandler(q *storequery.CatalogQuery) http.Handler {
	return &ReviewHandler{Q: q}
}

func (h *ReviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Q == nil {
		internalError(w, "review handler is not ready")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	productID := tailSegment(strings.TrimSuffix(r.URL.Path, "/"), "/store/reviews/")
	if productID == "" {
		badRequest(w, "productId is required")
		return
	}

	reviews, err := h.Q.ListReviews(r.Context(), productID)
	if err != nil {
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}
