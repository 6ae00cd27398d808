// internal/adapters/out/firestore/helper_repository_fs.go
package firestore

import (
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// isNotFound reports whether err is a Firestore document-not-found error.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// asString converts loosely-typed Firestore values to string.
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	}
	return ""
}

// asInt converts loosely-typed Firestore numeric values to int.
// Firestore decodes numbers as int64 or float64 depending on the writer.
func asInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	}
	return 0
}

// asTime converts Firestore timestamp values to time.Time.
func asTime(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	return time.Time{}, false
}
