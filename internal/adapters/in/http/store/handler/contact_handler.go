// internal/adapters/in/http/store/handler/contact_handler.go
package storeHandler

import (
	"errors"
	"net/http"

	"radacycling/internal/adapters/in/http/middleware"
	"radacycling/internal/application/usecase"
	messagedom "radacycling/internal/domain/message"
)

// ContactHandler accepts custom-order inquiries.
//
// Routes:
// - POST /store/contact
//
// The route is public: a signed-in buyer's uid is attached when the request
// carries a valid bearer token, anonymous submissions are still accepted.
type ContactHandler struct {
	Contact *usecase.ContactUsecase
}

func NewContactHandler(contact *usecase.ContactUsecase) http.Handler {
	return &ContactHandler{Contact: contact}
}

func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Contact == nil {
		internalError(w, "contact handler is not ready")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var msg messagedom.Message
	if err := readJSON(r, &msg); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	msg.ID = ""
	if uid, ok := middleware.CurrentUserUID(r); ok {
		msg.UserID = uid
	}

	docID, err := h.Contact.Submit(r.Context(), msg)
	if err != nil {
		if errors.Is(err, messagedom.ErrInvalidMessage) {
			badRequest(w, "invalid inquiry")
			return
		}
		if docID != "" {
			// Archived but not notified; the admin view still sees it.
			writeJSON(w, http.StatusAccepted, map[string]string{"id": docID, "warning": "notification failed"})
			return
		}
		internalError(w, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": docID})
}
