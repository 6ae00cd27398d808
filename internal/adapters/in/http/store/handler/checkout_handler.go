// internal/adapters/in/http/store/handler/checkout_handler.go
package storeHandler

import (
	"errors"
	"net/http"

	"radacycling/internal/adapters/in/http/middleware"
	storequery "radacycling/internal/application/query/store"
	"radacycling/internal/application/usecase"
)

// CheckoutHandler turns the buyer's current cart into a hosted payment link.
//
// Routes:
// - POST /store/checkout
type CheckoutHandler struct {
	Sessions *usecase.CartSessionManager
	CartQ    *storequery.CartQuery
	Checkout *usecase.CheckoutUsecase
}

func NewCheckoutHandler(sessions *usecase.CartSessionManager, cartQ *storequery.CartQuery, checkout *usecase.CheckoutUsecase) http.Handler {
	return &CheckoutHandler{Sessions: sessions, CartQ: cartQ, Checkout: checkout}
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Sessions == nil || h.CartQ == nil || h.Checkout == nil {
		internalError(w, "checkout handler is not ready")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	lang := langFrom(r)
	session, err := h.Sessions.Get(r.Context(), uid, lang)
	if err != nil {
		internalError(w, err.Error())
		return
	}

	// Denormalize right before payment so the link reflects current stock.
	view, err := h.CartQ.View(r.Context(), session.State, lang)
	if err != nil {
		internalError(w, err.Error())
		return
	}

	url, err := h.Checkout.CreatePaymentLink(r.Context(), view.Items)
	if err != nil {
		if errors.Is(err, usecase.ErrCheckoutCartEmpty) {
			badRequest(w, "cart is empty")
			return
		}
		internalError(w, err.Error())
		return
	}

	if _, err := h.Checkout.RecordOrders(r.Context(), uid, view.Items); err != nil {
		// The payment link exists; losing order rows is recoverable from
		// the payment provider, so degrade instead of failing checkout.
		writeJSON(w, http.StatusOK, map[string]any{"url": url, "warning": "order record incomplete"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
