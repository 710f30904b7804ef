package handler

import (
	"encoding/json"
	"net/http"
)

// Error kinds surfaced in API error responses.
const (
	KindValidation       = "validation_error"
	KindDuplicateEmail   = "duplicate_email"
	KindInvalidCreds     = "invalid_credentials"
	KindUnauthenticated  = "unauthenticated"
	KindForbidden        = "forbidden"
	KindNotFound         = "not_found"
	KindNegativeQuantity = "negative_quantity"
	KindInternal         = "internal"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(kind, msg string) map[string]any {
	return map[string]any{
		"error": map[string]string{"kind": kind, "message": msg},
	}
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, errorResponse(kind, msg))
}
