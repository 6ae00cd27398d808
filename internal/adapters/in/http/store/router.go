// internal/adapters/in/http/store/router.go
package store

import (
	"log"
	"net/http"
)

// Deps is the buyer-facing (store) handler set. Auth-guarded handlers are
// passed already wrapped by the user-auth middleware.
type Deps struct {
	Catalog   http.Handler
	Category  http.Handler
	Portfolio http.Handler
	Review    http.Handler

	Cart     http.Handler
	Checkout http.Handler
	Contact  http.Handler
	UserData http.Handler
}

// handleSafe registers pattern with h. A nil handler logs and registers
// NotFoundHandler instead, so a partially-wired container never crashes
// the instance.
func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[store.router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register registers buyer-facing routes onto mux.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	// catalog
	handleSafe(mux, "/store/products", deps.Catalog, "Catalog")
	handleSafe(mux, "/store/products/", deps.Catalog, "Catalog")

	// categories + menus
	handleSafe(mux, "/store/categories", deps.Category, "Category")
	handleSafe(mux, "/store/categories/", deps.Category, "Category")
	handleSafe(mux, "/store/menus/", deps.Category, "Category(menus)")

	// gallery
	handleSafe(mux, "/store/portfolio", deps.Portfolio, "Portfolio")
	handleSafe(mux, "/store/portfolio/", deps.Portfolio, "Portfolio")

	// reviews
	handleSafe(mux, "/store/reviews/", deps.Review, "Review")

	// cart + checkout (auth)
	handleSafe(mux, "/store/cart", deps.Cart, "Cart")
	handleSafe(mux, "/store/cart/", deps.Cart, "Cart")
	handleSafe(mux, "/store/checkout", deps.Checkout, "Checkout")

	// contact
	handleSafe(mux, "/store/contact", deps.Contact, "Contact")

	// account (auth)
	handleSafe(mux, "/store/user-data", deps.UserData, "UserData")
}
