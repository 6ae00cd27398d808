// internal/adapters/in/http/store/handler/cart_handler.go
package storeHandler

import (
	"net/http"

	"radacycling/internal/adapters/in/http/middleware"
	storequery "radacycling/internal/application/query/store"
	"radacycling/internal/application/usecase"
)

// CartHandler serves the signed-in buyer's cart.
//
// Routes:
// - GET    /store/cart            denormalized cart view
// - POST   /store/cart            {productId, quantity, sizeId, name}
// - DELETE /store/cart            {productId, sizeId, name}
type CartHandler struct {
	Sessions *usecase.CartSessionManager
	Q        *storequery.CartQuery
}

func NewCartHandler(sessions *usecase.CartSessionManager, q *storequery.CartQuery) http.Handler {
	return &CartHandler{Sessions: sessions, Q: q}
}

type cartMutationRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	SizeID    string `json:"sizeId"`
	Name      string `json:"name"`
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Sessions == nil || h.Q == nil {
		internalError(w, "cart handler is not ready")
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

	switch r.Method {
	case http.MethodGet:
		// fallthrough to the shared view below

	case http.MethodPost:
		var req cartMutationRequest
		if err := readJSON(r, &req); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		if err := session.State.AddToCart(req.ProductID, req.Quantity, req.SizeID, req.Name); err != nil {
			badRequest(w, err.Error())
			return
		}

	case http.MethodDelete:
		var req cartMutationRequest
		if err := readJSON(r, &req); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		session.State.RemoveFromCart(req.ProductID, req.Name, req.SizeID)

	default:
		methodNotAllowed(w)
		return
	}

	dto, err := h.Q.View(r.Context(), session.State, lang)
	if err != nil {
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto)
}
