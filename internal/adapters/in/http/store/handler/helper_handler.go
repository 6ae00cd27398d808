// internal/adapters/in/http/store/handler/helper_handler.go
package storeHandler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"radacycling/internal/domain/i18n"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func internalError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msg})
}

func readJSON(r *http.Request, v any) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()
	return json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
}

// langFrom resolves the display language: ?lang= wins, then Accept-Language,
// then English.
func langFrom(r *http.Request) i18n.Lang {
	if v := strings.TrimSpace(r.URL.Query().Get("lang")); v != "" {
		return i18n.ParseLang(v)
	}
	if v := strings.TrimSpace(r.Header.Get("Accept-Language")); v != "" {
		if i := strings.IndexAny(v, ",;"); i >= 0 {
			v = v[:i]
		}
		return i18n.ParseLang(v)
	}
	return i18n.DefaultLang
}

// tailSegment returns the path segment after prefix, or "" when absent.
func tailSegment(path, prefix string) string {
	path = strings.TrimSuffix(path, "/")
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(path, prefix))
}
