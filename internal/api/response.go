// Package api implements HTTP handlers for the currency converter service.
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid input"`
}

// Generic client-facing messages; failure details stay in the logs.
const (
	msgInvalidInput     = "Invalid input"
	msgConversionFailed = "Conversion failed"
	msgRatesFailed      = "Failed to fetch rates"
	msgInternal         = "Internal server error"
)

const maxRequestBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code. The body is
// encoded before the header is sent so an encoding failure becomes a 500.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + msgInternal + `"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
