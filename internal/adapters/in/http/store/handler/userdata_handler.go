// internal/adapters/in/http/store/handler/userdata_handler.go
package storeHandler

import (
	"net/http"

	"radacycling/internal/adapters/in/http/middleware"
	storequery "radacycling/internal/application/query/store"
)

// UserDataHandler serves the authenticated account page: the buyer's orders,
// plus every order and archived inquiry for the admin account.
//
// Routes:
// - GET /store/user-data
type UserDataHandler struct {
	Q *storequery.UserDataQuery
}

func NewUserDataHandler(q *storequery.UserDataQuery) http.Handler {
	return &UserDataHandler{Q: q}
}

func (h *UserDataHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Q == nil {
		internalError(w, "user-data handler is not ready")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	dto, err := h.Q.Fetch(r.Context(), uid)
	if err != nil {
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto)
}
