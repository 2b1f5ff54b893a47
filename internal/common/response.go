package common

import (
	"encoding/json"
	"net/http"
)

// CacheControlPublic lets browsers and CDNs keep governance responses for an
// hour and serve them stale while revalidating.
const CacheControlPublic = "public, max-age=3600, stale-while-revalidate=59"

type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes body as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)

	return nil
}

// Error writes {"error": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	err := JSON(w, status, &ErrorResponse{Error: message})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
